// Package domain holds the booking aggregate and its value objects. A Booking
// can only be built from already-validated parts; nothing on a constructed
// instance can fail.
package domain

import (
	"time"

	"consulta/internal/domains/shared/vo"
)

type Booking struct {
	id            vo.BookingID
	consultantID  vo.ConsultantID
	customerName  CustomerName
	customerEmail vo.Email
	timeSlot      TimeSlot
	createdAt     time.Time
}

// NewBooking assembles a booking from validated components, stamping the
// creation time from the caller's clock reading.
func NewBooking(
	id vo.BookingID,
	consultantID vo.ConsultantID,
	customerName CustomerName,
	customerEmail vo.Email,
	timeSlot TimeSlot,
	now time.Time,
) Booking {
	return Booking{
		id:            id,
		consultantID:  consultantID,
		customerName:  customerName,
		customerEmail: customerEmail,
		timeSlot:      timeSlot,
		createdAt:     now,
	}
}

func (b Booking) ID() vo.BookingID {
	return b.id
}

func (b Booking) ConsultantID() vo.ConsultantID {
	return b.consultantID
}

func (b Booking) CustomerName() CustomerName {
	return b.customerName
}

func (b Booking) CustomerEmail() vo.Email {
	return b.customerEmail
}

func (b Booking) TimeSlot() TimeSlot {
	return b.timeSlot
}

func (b Booking) CreatedAt() time.Time {
	return b.createdAt
}
