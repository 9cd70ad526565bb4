package vo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"consulta/shared/failure"
)

const canonicalUUIDLength = 36

// parseUUID accepts only the canonical hyphenated 8-4-4-4-12 form, in either
// case, and normalizes it to lowercase so identity equality is unaffected by
// the casing of the input.
func parseUUID(raw string) (string, error) {
	if len(raw) != canonicalUUIDLength {
		return "", failure.DomainRule(fmt.Sprintf("Invalid UUID format: %s", raw))
	}

	if _, err := uuid.Parse(raw); err != nil {
		return "", failure.DomainRule(fmt.Sprintf("Invalid UUID format: %s", raw))
	}

	return strings.ToLower(raw), nil
}

type BookingID struct {
	value string
}

func NewBookingID(raw string) (BookingID, error) {
	value, err := parseUUID(raw)
	if err != nil {
		return BookingID{}, err
	}

	return BookingID{value: value}, nil
}

// GenerateBookingID returns a fresh random (v4) identity.
func GenerateBookingID() BookingID {
	return BookingID{value: uuid.NewString()}
}

func (id BookingID) String() string {
	return id.value
}

func (id BookingID) Equals(other BookingID) bool {
	return id.value == other.value
}

type ConsultantID struct {
	value string
}

func NewConsultantID(raw string) (ConsultantID, error) {
	value, err := parseUUID(raw)
	if err != nil {
		return ConsultantID{}, err
	}

	return ConsultantID{value: value}, nil
}

// GenerateConsultantID returns a fresh random (v4) identity.
func GenerateConsultantID() ConsultantID {
	return ConsultantID{value: uuid.NewString()}
}

func (id ConsultantID) String() string {
	return id.value
}

func (id ConsultantID) Equals(other ConsultantID) bool {
	return id.value == other.value
}
