package discovery

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"runtime"
	"sort"
	"strings"
)

const procARP = "/proc/net/arp"

var ErrUnsupportedOS = errors.New("reading the system ARP cache is not supported on this OS")

// ReadSystemCache returns the complete entries of the kernel's ARP cache,
// sorted by IP.
func ReadSystemCache() ([]Host, error) {
	if runtime.GOOS != "linux" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
	}

	f, err := os.Open(procARP)
	if err != nil {
		return nil, fmt.Errorf("could not open ARP cache: %w", err)
	}
	defer f.Close()

	return ParseProcARP(f)
}

// ParseProcARP parses the /proc/net/arp format:
//
//	IP address       HW type     Flags       HW address            Mask     Device
//	192.168.1.1      0x1         0x2         aa:bb:cc:dd:ee:ff     *        eth0
//
// Incomplete entries are skipped.
func ParseProcARP(r io.Reader) ([]Host, error) {
	scanner := bufio.NewScanner(r)

	// Header
	if !scanner.Scan() {
		return nil, scanner.Err()
	}

	seen := make(map[string]struct{})
	var hosts []Host

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 6 {
			continue
		}

		ip := net.ParseIP(fields[0]).To4()
		if ip == nil {
			continue
		}

		// Flags 0x0 marks an incomplete entry.
		if fields[2] == "0x0" || fields[3] == "00:00:00:00:00:00" {
			continue
		}

		mac, err := net.ParseMAC(fields[3])
		if err != nil {
			continue
		}

		if _, dup := seen[ip.String()]; dup {
			continue
		}
		seen[ip.String()] = struct{}{}

		hosts = append(hosts, Host{IP: ip, MAC: mac, Device: fields[5]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(hosts, func(i, j int) bool {
		return bytes.Compare(hosts[i].IP, hosts[j].IP) < 0
	})

	return hosts, nil
}

// HardwareString formats a MAC the way the simulator's seed table does,
// e.g. 00-AA-BB-CC-DD-01.
func HardwareString(mac net.HardwareAddr) string {
	return strings.ToUpper(strings.ReplaceAll(mac.String(), ":", "-"))
}
