package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"consulta/internal/domains/consultant/domain"
	"consulta/internal/domains/shared/vo"
)

func TestNewConsultant(t *testing.T) {
	id, err := vo.NewConsultantID("9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b")
	assert.NoError(t, err)

	email, err := vo.NewEmail("anna.mueller@example.com")
	assert.NoError(t, err)

	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	consultant := domain.NewConsultant(id, "Dr. Anna Müller", email, domain.EightHours(), now)

	assert.True(t, consultant.ID().Equals(id))
	assert.Equal(t, "Dr. Anna Müller", consultant.Name())
	assert.Equal(t, "anna.mueller@example.com", consultant.Email().String())
	assert.Equal(t, 480, consultant.DailyCapacity().Minutes())
	assert.Equal(t, now, consultant.CreatedAt())
}
