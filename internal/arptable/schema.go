package arptable

import (
	memdb "github.com/hashicorp/go-memdb"
)

const entryTable = "entries"

type Index string

const (
	// AddressIndex is the primary key; memdb requires it to be named "id".
	AddressIndex = Index("id")
	SeqIndex     = Index("seq")
)

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			entryTable: entryTableSchema(),
		},
	}
}

func entryTableSchema() *memdb.TableSchema {
	return &memdb.TableSchema{
		Name: entryTable,
		Indexes: map[string]*memdb.IndexSchema{
			string(AddressIndex): {
				Name:         string(AddressIndex),
				AllowMissing: false,
				Unique:       true,
				// Case-sensitive: "Host-A" and "host-a" are different rows.
				Indexer: &memdb.StringFieldIndex{Field: "Address"},
			},
			string(SeqIndex): {
				Name:         string(SeqIndex),
				AllowMissing: false,
				Unique:       true,
				Indexer:      &memdb.UintFieldIndex{Field: "Seq"},
			},
		},
	}
}
