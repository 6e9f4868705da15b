package reach

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"gomultitool/internal/models"
)

func TestHistoryKeepsNewest(t *testing.T) {
	h := NewHistory(3)

	for i := 0; i < 5; i++ {
		h.Add(models.ProbeResult{Host: fmt.Sprintf("host-%d", i), Reachable: i%2 == 0})
	}

	recent := h.Recent(-1)
	assert.Len(t, recent, 3)
	assert.Equal(t, "host-2", recent[0].Host)
	assert.Equal(t, "host-4", recent[2].Host)

	last := h.Recent(1)
	assert.Len(t, last, 1)
	assert.Equal(t, "host-4", last[0].Host)

	total, reachable := h.Counts()
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, reachable)
}

func TestHistoryRecentReturnsCopy(t *testing.T) {
	h := NewHistory(0)
	h.Add(models.ProbeResult{Host: "a"})

	recent := h.Recent(10)
	recent[0].Host = "mutated"

	assert.Equal(t, "a", h.Recent(10)[0].Host)
}
