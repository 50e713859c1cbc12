package clock_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/platform/clock"
	"github.com/stretchr/testify/assert"
)

func TestSystem_NowIsUTC(t *testing.T) {
	now := clock.System{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestManual_AdvanceOnly(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now(), "clock must not move on its own")

	c.Advance(5 * time.Second)
	assert.Equal(t, start.Add(5*time.Second), c.Now())

	assert.Panics(t, func() { c.Advance(-time.Second) })
	assert.Equal(t, start.Add(5*time.Second), c.Now())
}
