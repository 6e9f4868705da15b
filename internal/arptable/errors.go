package arptable

import "errors"

var (
	ErrMissingFields     = errors.New("address and hardware address are required")
	ErrDuplicateAddress  = errors.New("address already exists")
	ErrSelectionRequired = errors.New("source and destination must be selected")
)
