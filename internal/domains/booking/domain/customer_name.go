package domain

import (
	"strings"
	"unicode/utf8"

	"consulta/shared/failure"
)

const customerNameMaxLength = 255

// CustomerName is the trimmed, length-bounded name a booking is made under.
// Length is measured in characters, not bytes.
type CustomerName struct {
	value string
}

func NewCustomerName(raw string) (CustomerName, error) {
	value := strings.TrimSpace(raw)

	if value == "" {
		return CustomerName{}, failure.DomainRule("Customer name cannot be empty")
	}

	if utf8.RuneCountInString(value) > customerNameMaxLength {
		return CustomerName{}, failure.DomainRule("Customer name cannot exceed 255 characters")
	}

	return CustomerName{value: value}, nil
}

func (n CustomerName) String() string {
	return n.value
}
