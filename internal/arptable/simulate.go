package arptable

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"gomultitool/internal/models"
)

// Exchange is one simulated request/reply round. Reply is nil when no
// device answered.
type Exchange struct {
	Source string
	Target string
	Reply  *models.Entry

	// Frames is set when both ends carry a valid IPv4 address and
	// hardware address.
	Frames *Frames
}

// Simulate broadcasts a request from src asking for dst and collects the
// first matching device's reply. The table is never modified.
func Simulate(t *Table, src, dst string) (Exchange, error) {
	if src == "" || dst == "" {
		return Exchange{}, ErrSelectionRequired
	}

	ex := Exchange{Source: src, Target: dst}

	reply, ok := t.Lookup(dst)
	if !ok {
		return ex, nil
	}
	ex.Reply = &reply

	sender, ok := t.Lookup(src)
	if !ok {
		return ex, nil
	}

	frames, err := buildFrames(sender, reply)
	if err != nil {
		// Free-form addresses are allowed in the table; they just don't
		// get wire frames.
		return ex, nil
	}
	ex.Frames = frames

	return ex, nil
}

// Report renders the exchange. The table view holds only the matched entry;
// no per-source cache is modelled.
func (ex Exchange) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Source [%s] sends ARP Request: Who has %s?\n", ex.Source, ex.Target)

	if ex.Reply == nil {
		b.WriteString("No device responded to the ARP request.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Device [%s] replies: My MAC is %s\n\n", ex.Target, ex.Reply.HardwareAddr)
	fmt.Fprintf(&b, "=== ARP Table at Source [%s] ===\n", ex.Source)
	b.WriteString("IP Address\tMAC Address\n")
	fmt.Fprintf(&b, "%s\t%s\n", ex.Target, ex.Reply.HardwareAddr)

	if ex.Frames != nil {
		fmt.Fprintf(&b, "\nRequest frame: %d bytes, broadcast\n", len(ex.Frames.Request))
		fmt.Fprintf(&b, "Reply frame: %d bytes, unicast to %s\n", len(ex.Frames.Reply), ex.Source)
	}

	return b.String()
}

// AddedReport confirms an insert.
func AddedReport(e models.Entry) string {
	return fmt.Sprintf("Device [%s] with MAC [%s] added.\n", e.Address, e.HardwareAddr)
}

// ErrorReport renders a validation or storage failure.
func ErrorReport(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSelectionRequired):
		return "Please select valid IPs."
	case errors.Is(err, ErrMissingFields):
		return "Please enter both IP and MAC address."
	case errors.Is(err, ErrDuplicateAddress):
		return "IP already exists."
	default:
		return "Error: " + err.Error()
	}
}

func parseEndpoint(e models.Entry) (net.IP, net.HardwareAddr, error) {
	ip := net.ParseIP(e.Address).To4()
	if ip == nil {
		return nil, nil, fmt.Errorf("not an IPv4 address: %q", e.Address)
	}

	mac, err := net.ParseMAC(e.HardwareAddr)
	if err != nil {
		return nil, nil, err
	}
	if len(mac) != 6 {
		return nil, nil, fmt.Errorf("not an Ethernet address: %q", e.HardwareAddr)
	}

	return ip, mac, nil
}
