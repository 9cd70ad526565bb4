package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"consulta/shared/clock"
)

func TestSystemClock_Now(t *testing.T) {
	c := clock.NewSystemClock()

	before := time.Now().UTC()
	now := c.Now()
	after := time.Now().UTC()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
	assert.Equal(t, time.UTC, now.Location())
}

func TestFixedClock_Now(t *testing.T) {
	instant := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	c := clock.NewFixedClock(instant)

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now())
}
