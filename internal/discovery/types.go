package discovery

import (
	"net"
)

// Host is a neighbour found in the operating system's ARP cache.
type Host struct {
	IP     net.IP
	MAC    net.HardwareAddr
	Device string // interface the entry was learned on
}
