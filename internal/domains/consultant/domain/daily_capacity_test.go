package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consulta/internal/domains/consultant/domain"
)

func TestNewDailyCapacity(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr string
	}{
		{name: "typical working day", minutes: 480},
		{name: "minimum", minutes: 1},
		{name: "full day", minutes: 1440},
		{name: "zero", minutes: 0, wantErr: "Daily capacity must be positive"},
		{name: "negative", minutes: -60, wantErr: "Daily capacity must be positive"},
		{name: "over a day", minutes: 1441, wantErr: "Daily capacity cannot exceed 24 hours (1440 minutes)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capacity, err := domain.NewDailyCapacity(tt.minutes)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.minutes, capacity.Minutes())
		})
	}
}

func TestEightHours(t *testing.T) {
	assert.Equal(t, 480, domain.EightHours().Minutes())
}

func TestDailyCapacity_IsExceededBy(t *testing.T) {
	capacity := domain.EightHours()

	assert.False(t, capacity.IsExceededBy(479))
	assert.False(t, capacity.IsExceededBy(480))
	assert.True(t, capacity.IsExceededBy(481))
}

func TestDailyCapacity_RemainingMinutes(t *testing.T) {
	capacity := domain.EightHours()

	assert.Equal(t, 480, capacity.RemainingMinutes(0))
	assert.Equal(t, 180, capacity.RemainingMinutes(300))
	assert.Equal(t, 0, capacity.RemainingMinutes(480))
	// never negative, even when overbooked
	assert.Equal(t, 0, capacity.RemainingMinutes(1000))
}
