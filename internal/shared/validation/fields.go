// Package validation provides reusable field validators with tri-state
// results for live form feedback: a field is valid, invalid with a reason,
// or neutral while still empty. The tri-state is a UI affordance only;
// submission paths re-validate and reject outright.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

type State int

const (
	// StateNeutral means the field is empty and has not been judged yet.
	StateNeutral State = iota
	StateValid
	StateInvalid
)

// FieldResult is the outcome of validating a single form field.
type FieldResult struct {
	State  State
	Reason string
	// Normalized holds the canonical form of the input where the validator
	// applies one (e.g. upper-cased room numbers).
	Normalized string
}

func (r FieldResult) IsValid() bool {
	return r.State == StateValid
}

func (r FieldResult) IsInvalid() bool {
	return r.State == StateInvalid
}

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	roomPattern     = regexp.MustCompile(`^[A-Za-z0-9-]{1,10}$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
)

// Phone validates a contact number: exactly 10 numeric digits.
func Phone(value string) FieldResult {
	if value == "" {
		return FieldResult{State: StateNeutral}
	}
	if len(value) < 10 && isAllDigits(value) {
		return FieldResult{
			State:  StateInvalid,
			Reason: fmt.Sprintf("Enter %d more digits", 10-len(value)),
		}
	}
	if phonePattern.MatchString(value) {
		return FieldResult{State: StateValid, Normalized: value}
	}
	return FieldResult{State: StateInvalid, Reason: "Invalid phone number format"}
}

// RoomNumber validates a hostel room number: 1-10 letters, digits or
// hyphens. The normalized form is upper-cased.
func RoomNumber(value string) FieldResult {
	if value == "" {
		return FieldResult{State: StateNeutral}
	}
	if roomPattern.MatchString(value) {
		return FieldResult{State: StateValid, Normalized: strings.ToUpper(value)}
	}
	return FieldResult{State: StateInvalid, Reason: "Use only letters, numbers, and hyphens"}
}

// Username validates a login name: 3-20 letters, digits or underscores.
func Username(value string) FieldResult {
	if value == "" {
		return FieldResult{State: StateNeutral}
	}
	if len(value) < 3 {
		return FieldResult{
			State:  StateInvalid,
			Reason: fmt.Sprintf("Enter %d more characters", 3-len(value)),
		}
	}
	if usernamePattern.MatchString(value) {
		return FieldResult{State: StateValid, Normalized: value}
	}
	return FieldResult{State: StateInvalid, Reason: "Invalid username format"}
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
