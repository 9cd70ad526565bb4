// Package vo holds the value objects shared across domains. Each type
// validates on construction and is immutable afterwards; an invalid input
// never produces a value.
package vo

import (
	"fmt"
	"regexp"

	"consulta/shared/failure"
)

// Local part, "@", domain with at least one dot. No spaces, no second "@".
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, failure.DomainRule(fmt.Sprintf("Invalid email format: %s", raw))
	}

	return Email{value: raw}, nil
}

func (e Email) String() string {
	return e.value
}

// Equals compares by exact value, case-sensitive.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
