// Package domain holds the consultant aggregate and its capacity value object.
package domain

import (
	"time"

	"consulta/internal/domains/shared/vo"
)

type Consultant struct {
	id            vo.ConsultantID
	name          string
	email         vo.Email
	dailyCapacity DailyCapacity
	createdAt     time.Time
}

// NewConsultant assembles a consultant from validated components, stamping
// the creation time from the caller's clock reading.
func NewConsultant(
	id vo.ConsultantID,
	name string,
	email vo.Email,
	dailyCapacity DailyCapacity,
	now time.Time,
) Consultant {
	return Consultant{
		id:            id,
		name:          name,
		email:         email,
		dailyCapacity: dailyCapacity,
		createdAt:     now,
	}
}

func (c Consultant) ID() vo.ConsultantID {
	return c.id
}

func (c Consultant) Name() string {
	return c.name
}

func (c Consultant) Email() vo.Email {
	return c.email
}

func (c Consultant) DailyCapacity() DailyCapacity {
	return c.dailyCapacity
}

func (c Consultant) CreatedAt() time.Time {
	return c.createdAt
}
