// Package arptable simulates an ARP cache: an ordered list of network
// address to hardware address pairs that only grows.
package arptable

import (
	"fmt"
	"sort"
	"strings"

	memdb "github.com/hashicorp/go-memdb"

	"gomultitool/internal/models"
)

// Table is the simulator's address table. Entries are kept in insertion
// order and are never removed.
type Table struct {
	db      *memdb.MemDB
	nextSeq uint64
}

// DefaultEntries is the table's contents at panel construction.
func DefaultEntries() []models.Entry {
	return []models.Entry{
		{Address: "192.168.1.1", HardwareAddr: "00-AA-BB-CC-DD-01"},
		{Address: "192.168.1.2", HardwareAddr: "00-AA-BB-CC-DD-02"},
		{Address: "192.168.1.3", HardwareAddr: "00-AA-BB-CC-DD-03"},
		{Address: "192.168.1.4", HardwareAddr: "00-AA-BB-CC-DD-04"},
	}
}

// New returns a table seeded with the given entries, in order.
func New(seed ...models.Entry) (*Table, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	t := &Table{db: db}

	for _, e := range seed {
		if _, err := t.Add(e.Address, e.HardwareAddr); err != nil {
			return nil, fmt.Errorf("seed %s: %w", e.Address, err)
		}
	}

	return t, nil
}

// NewDefault returns a table holding DefaultEntries.
func NewDefault() (*Table, error) {
	return New(DefaultEntries()...)
}

// Add appends a new entry. Both fields are trimmed and required, and the
// address must not already be present.
func (t *Table) Add(address, hardwareAddr string) (models.Entry, error) {
	address = strings.TrimSpace(address)
	hardwareAddr = strings.TrimSpace(hardwareAddr)

	if address == "" || hardwareAddr == "" {
		return models.Entry{}, ErrMissingFields
	}

	txn := t.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(entryTable, string(AddressIndex), address)
	if err != nil {
		return models.Entry{}, fmt.Errorf("lookup %s: %w", address, err)
	}
	if existing != nil {
		return models.Entry{}, fmt.Errorf("%w: %s", ErrDuplicateAddress, address)
	}

	entry := &models.Entry{
		Seq:          t.nextSeq,
		Address:      address,
		HardwareAddr: hardwareAddr,
	}

	if err := txn.Insert(entryTable, entry); err != nil {
		return models.Entry{}, fmt.Errorf("insert %s: %w", address, err)
	}

	txn.Commit()
	t.nextSeq++

	return *entry, nil
}

// Entries returns every entry in insertion order.
func (t *Table) Entries() []models.Entry {
	txn := t.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(entryTable, string(SeqIndex))
	if err != nil {
		// Only reachable with a broken schema.
		panic(fmt.Sprintf("arptable: iterate entries: %v", err))
	}

	var out []models.Entry
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, *obj.(*models.Entry))
	}

	// The seq index stores uvarints, whose byte order only matches numeric
	// order below 128.
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })

	return out
}

// Addresses returns the network addresses in insertion order; they back the
// panel's source and destination selections.
func (t *Table) Addresses() []string {
	entries := t.Entries()

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Address
	}

	return out
}

func (t *Table) Len() int {
	return int(t.nextSeq)
}

// Lookup scans entries in insertion order and returns the first whose
// address matches exactly.
func (t *Table) Lookup(address string) (models.Entry, bool) {
	for _, e := range t.Entries() {
		if e.Address == address {
			return e, true
		}
	}

	return models.Entry{}, false
}

// Merge adds every entry whose address is not yet present, in order, and
// returns how many were added. Invalid and duplicate entries are skipped.
func (t *Table) Merge(entries ...models.Entry) int {
	added := 0
	for _, e := range entries {
		if _, err := t.Add(e.Address, e.HardwareAddr); err == nil {
			added++
		}
	}

	return added
}
