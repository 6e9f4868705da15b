package models

// Entry is one row of the simulated ARP table.
type Entry struct {
	Seq          uint64 // insertion order, assigned by the table
	Address      string
	HardwareAddr string
}
