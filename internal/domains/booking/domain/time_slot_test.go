package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"consulta/internal/domains/booking/domain"
)

func slotAt(t *testing.T, startHour, startMin, endHour, endMin int) domain.TimeSlot {
	t.Helper()

	slot, err := domain.NewTimeSlot(
		time.Date(2026, 1, 20, startHour, startMin, 0, 0, time.UTC),
		time.Date(2026, 1, 20, endHour, endMin, 0, 0, time.UTC),
	)
	assert.NoError(t, err)

	return slot
}

func TestNewTimeSlot(t *testing.T) {
	start := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 11, 0, 0, 0, time.UTC)

	slot, err := domain.NewTimeSlot(start, end)

	assert.NoError(t, err)
	assert.Equal(t, start, slot.StartsAt())
	assert.Equal(t, end, slot.EndsAt())
}

func TestNewTimeSlot_RejectsInvertedAndEqualBounds(t *testing.T) {
	start := time.Date(2026, 1, 20, 11, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	_, err := domain.NewTimeSlot(start, end)
	assert.EqualError(t, err, "Start time must be before end time")

	_, err = domain.NewTimeSlot(start, start)
	assert.EqualError(t, err, "Start time must be before end time")
}

func TestTimeSlot_DurationInMinutes(t *testing.T) {
	tests := []struct {
		name string
		slot domain.TimeSlot
		want int
	}{
		{name: "one hour", slot: slotAt(t, 10, 0, 11, 0), want: 60},
		{name: "half hour", slot: slotAt(t, 10, 0, 10, 30), want: 30},
		{name: "two hours", slot: slotAt(t, 10, 0, 12, 0), want: 120},
		{name: "ninety minutes", slot: slotAt(t, 10, 0, 11, 30), want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.DurationInMinutes())
		})
	}
}

func TestTimeSlot_DurationInMinutes_TruncatesPartialMinutes(t *testing.T) {
	slot, err := domain.NewTimeSlot(
		time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 20, 10, 30, 59, 0, time.UTC),
	)
	assert.NoError(t, err)

	assert.Equal(t, 30, slot.DurationInMinutes())
}

func TestTimeSlot_OverlapsWith(t *testing.T) {
	tests := []struct {
		name string
		a    domain.TimeSlot
		b    domain.TimeSlot
		want bool
	}{
		{name: "overlapping by a minute", a: slotAt(t, 10, 0, 11, 0), b: slotAt(t, 10, 59, 12, 0), want: true},
		{name: "touching endpoints do not overlap", a: slotAt(t, 10, 0, 11, 0), b: slotAt(t, 11, 0, 12, 0), want: false},
		{name: "identical slots overlap", a: slotAt(t, 10, 0, 11, 0), b: slotAt(t, 10, 0, 11, 0), want: true},
		{name: "disjoint", a: slotAt(t, 8, 0, 9, 0), b: slotAt(t, 10, 0, 11, 0), want: false},
		{name: "contained", a: slotAt(t, 10, 0, 12, 0), b: slotAt(t, 10, 30, 11, 0), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.OverlapsWith(tt.b))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.b.OverlapsWith(tt.a))
		})
	}
}

func TestTimeSlot_IsOnDate(t *testing.T) {
	slot := slotAt(t, 10, 0, 11, 0)

	assert.True(t, slot.IsOnDate(time.Date(2026, 1, 20, 23, 59, 0, 0, time.UTC)))
	assert.False(t, slot.IsOnDate(time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC)))
}

func TestTimeSlot_IsInPast(t *testing.T) {
	slot := slotAt(t, 10, 0, 11, 0)

	assert.True(t, slot.IsInPast(time.Date(2026, 1, 20, 10, 0, 1, 0, time.UTC)))
	assert.False(t, slot.IsInPast(time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)))
	assert.False(t, slot.IsInPast(time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)))
}
