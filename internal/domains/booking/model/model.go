package model

import (
	"time"

	"consulta/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldConsultantID  = "consultant_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldStartsAt      = "starts_at"
	FieldEndsAt        = "ends_at"
)

type Booking struct {
	ID            string    `db:"id"`
	ConsultantID  string    `db:"consultant_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	StartsAt      time.Time `db:"starts_at"`
	EndsAt        time.Time `db:"ends_at"`
	model.Metadata
}
