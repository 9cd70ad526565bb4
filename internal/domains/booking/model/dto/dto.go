package dto

import (
	"fmt"
	"time"

	"consulta/internal/domains/booking/domain"
	"consulta/shared/constant"
	"consulta/shared/failure"
)

type CreateBookingRequest struct {
	ConsultantID  string `json:"consultant_id"  validate:"required,uuid"`
	CustomerName  string `json:"customer_name"  validate:"required,max=255"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	StartsAt      string `json:"starts_at"      validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndsAt        string `json:"ends_at"        validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// ParseTimes decodes both slot bounds. The handler has already checked the
// shape, so a parse failure here still maps to the input-shape failure code.
func (r *CreateBookingRequest) ParseTimes() (startsAt, endsAt time.Time, err error) {
	startsAt, err = time.Parse(constant.DateFormat, r.StartsAt)
	if err != nil {
		return startsAt, endsAt, failure.Unprocessable(fmt.Sprintf("starts_at must be a valid RFC3339 timestamp: %s", r.StartsAt))
	}

	endsAt, err = time.Parse(constant.DateFormat, r.EndsAt)
	if err != nil {
		return startsAt, endsAt, failure.Unprocessable(fmt.Sprintf("ends_at must be a valid RFC3339 timestamp: %s", r.EndsAt))
	}

	return startsAt, endsAt, nil
}

type BookingResponse struct {
	ID              string `json:"id"`
	ConsultantID    string `json:"consultant_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	DurationMinutes int    `json:"duration_minutes"`
	CreatedAt       string `json:"created_at"`
}

func (r *BookingResponse) FromDomain(booking domain.Booking) {
	r.ID = booking.ID().String()
	r.ConsultantID = booking.ConsultantID().String()
	r.CustomerName = booking.CustomerName().String()
	r.CustomerEmail = booking.CustomerEmail().String()
	r.StartsAt = booking.TimeSlot().StartsAt().UTC().Format(constant.TimestampFormat)
	r.EndsAt = booking.TimeSlot().EndsAt().UTC().Format(constant.TimestampFormat)
	r.DurationMinutes = booking.TimeSlot().DurationInMinutes()
	r.CreatedAt = booking.CreatedAt().UTC().Format(constant.TimestampFormat)
}
