package arptable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomultitool/internal/models"
)

func newDefaultTable(t *testing.T) *Table {
	t.Helper()

	table, err := NewDefault()
	require.NoError(t, err)

	return table
}

func TestNewDefaultSeedsInOrder(t *testing.T) {
	table := newDefaultTable(t)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t,
		[]string{"192.168.1.1", "192.168.1.2", "192.168.1.3", "192.168.1.4"},
		table.Addresses())

	entries := table.Entries()
	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.EqualValues(t, i, e.Seq)
	}
	assert.Equal(t, "00-AA-BB-CC-DD-04", entries[3].HardwareAddr)
}

func TestAddNewEntry(t *testing.T) {
	table := newDefaultTable(t)

	entry, err := table.Add("  10.0.0.9 ", " 00-11-22-33-44-55\t")
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.9", entry.Address)
	assert.Equal(t, "00-11-22-33-44-55", entry.HardwareAddr)
	assert.Equal(t, 5, table.Len())
	assert.Equal(t, "10.0.0.9", table.Addresses()[4], "appended last")
	assert.Equal(t, "Device [10.0.0.9] with MAC [00-11-22-33-44-55] added.\n", AddedReport(entry))
}

func TestAddDuplicateAddressRejected(t *testing.T) {
	table := newDefaultTable(t)

	_, err := table.Add("192.168.1.3", "00-FF-FF-FF-FF-FF")
	require.ErrorIs(t, err, ErrDuplicateAddress)

	assert.Equal(t, "IP already exists.", ErrorReport(err))
	assert.Equal(t, 4, table.Len())
	assert.Len(t, table.Entries(), 4)

	e, ok := table.Lookup("192.168.1.3")
	require.True(t, ok)
	assert.Equal(t, "00-AA-BB-CC-DD-03", e.HardwareAddr, "existing entry untouched")
}

func TestAddDuplicateCheckIsCaseSensitive(t *testing.T) {
	table, err := New()
	require.NoError(t, err)

	_, err = table.Add("router-a", "00-00-00-00-00-01")
	require.NoError(t, err)

	_, err = table.Add("ROUTER-A", "00-00-00-00-00-02")
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
}

func TestAddAllowsDuplicateHardwareAddress(t *testing.T) {
	table := newDefaultTable(t)

	_, err := table.Add("192.168.1.50", "00-AA-BB-CC-DD-01")
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())
}

func TestAddMissingFields(t *testing.T) {
	table := newDefaultTable(t)

	for _, tc := range []struct{ ip, mac string }{
		{"", "00-11-22-33-44-55"},
		{"10.0.0.1", ""},
		{"   ", "  "},
	} {
		_, err := table.Add(tc.ip, tc.mac)
		require.ErrorIs(t, err, ErrMissingFields)
		assert.Equal(t, "Please enter both IP and MAC address.", ErrorReport(err))
	}

	assert.Equal(t, 4, table.Len())
}

func TestNewRejectsDuplicateSeed(t *testing.T) {
	seed := DefaultEntries()
	seed = append(seed, seed[0])

	_, err := New(seed...)
	assert.ErrorIs(t, err, ErrDuplicateAddress)
}

func TestLookupMissing(t *testing.T) {
	table := newDefaultTable(t)

	_, ok := table.Lookup("192.168.1.99")
	assert.False(t, ok)
}

func TestMergeSkipsExistingAndInvalid(t *testing.T) {
	table := newDefaultTable(t)

	added := table.Merge(
		models.Entry{Address: "192.168.1.1", HardwareAddr: "AA-AA-AA-AA-AA-AA"},
		models.Entry{Address: "10.0.0.7", HardwareAddr: "00-11-22-33-44-55"},
		models.Entry{Address: "10.0.0.8"},
	)

	assert.Equal(t, 1, added)
	assert.Equal(t, 5, table.Len())

	e, ok := table.Lookup("192.168.1.1")
	require.True(t, ok)
	assert.Equal(t, "00-AA-BB-CC-DD-01", e.HardwareAddr)
}
