package domain

import (
	"time"

	"consulta/shared/constant"
	"consulta/shared/failure"
)

// TimeSlot is a half-open interval [StartsAt, EndsAt) with second precision.
type TimeSlot struct {
	startsAt time.Time
	endsAt   time.Time
}

func NewTimeSlot(startsAt, endsAt time.Time) (TimeSlot, error) {
	if !startsAt.Before(endsAt) {
		return TimeSlot{}, failure.DomainRule("Start time must be before end time")
	}

	return TimeSlot{startsAt: startsAt, endsAt: endsAt}, nil
}

func (t TimeSlot) StartsAt() time.Time {
	return t.startsAt
}

func (t TimeSlot) EndsAt() time.Time {
	return t.endsAt
}

// DurationInMinutes is the slot length in whole minutes, truncated.
func (t TimeSlot) DurationInMinutes() int {
	seconds := int(t.endsAt.Sub(t.startsAt).Seconds())

	return seconds / constant.MinutesToSeconds
}

// IsOnDate reports whether the slot starts on the same calendar day as date.
// Only the date portion is compared, not the instant.
func (t TimeSlot) IsOnDate(date time.Time) bool {
	return t.startsAt.Format(time.DateOnly) == date.Format(time.DateOnly)
}

// OverlapsWith reports whether two slots share any instant. Touching
// endpoints do not overlap.
func (t TimeSlot) OverlapsWith(other TimeSlot) bool {
	return t.startsAt.Before(other.endsAt) && t.endsAt.After(other.startsAt)
}

// IsInPast reports whether the slot starts before the given instant.
func (t TimeSlot) IsInPast(now time.Time) bool {
	return t.startsAt.Before(now)
}
