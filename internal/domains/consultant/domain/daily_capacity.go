package domain

import (
	"consulta/shared/failure"
)

const (
	EightWorkingHoursInMinutes = 480
	OneDayInMinutes            = 1440
)

// DailyCapacity is the number of bookable minutes a consultant offers per day.
type DailyCapacity struct {
	minutes int
}

func NewDailyCapacity(minutes int) (DailyCapacity, error) {
	if minutes <= 0 {
		return DailyCapacity{}, failure.DomainRule("Daily capacity must be positive")
	}

	if minutes > OneDayInMinutes {
		return DailyCapacity{}, failure.DomainRule("Daily capacity cannot exceed 24 hours (1440 minutes)")
	}

	return DailyCapacity{minutes: minutes}, nil
}

// EightHours is the standard working-day capacity.
func EightHours() DailyCapacity {
	return DailyCapacity{minutes: EightWorkingHoursInMinutes}
}

func (c DailyCapacity) Minutes() int {
	return c.minutes
}

// IsExceededBy reports whether the used minutes exceed the capacity.
func (c DailyCapacity) IsExceededBy(usedMinutes int) bool {
	return usedMinutes > c.minutes
}

// RemainingMinutes returns the minutes left given the used amount, never
// negative.
func (c DailyCapacity) RemainingMinutes(usedMinutes int) int {
	return max(0, c.minutes-usedMinutes)
}
