package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// MinParticipants is the smallest group a bill can be split between.
// The partitioner itself accepts a single participant.
const MinParticipants = 2

// Field names the input a validation failure belongs to.
type Field string

const (
	FieldAmount       Field = "amount"
	FieldParticipants Field = "participants"
)

// ValidationError reports which input field rejected a split request.
type ValidationError struct {
	Field Field

	// Index is the offending participant position, or -1 when the error is
	// not about a single participant.
	Index int

	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FieldOf returns the field of a *ValidationError anywhere in err's chain.
func FieldOf(err error) (Field, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Field, true
	}
	return "", false
}

// ValidateSplitInputs checks a bill before it is split.
// Checks run in order: amount, participant count, participant names.
func ValidateSplitInputs(totalPaise int64, participants []Participant) error {
	if totalPaise <= 0 {
		return &ValidationError{
			Field:   FieldAmount,
			Index:   -1,
			Message: "amount must be greater than zero",
		}
	}

	if len(participants) < MinParticipants {
		return &ValidationError{
			Field:   FieldParticipants,
			Index:   -1,
			Message: fmt.Sprintf("at least %d participants are required", MinParticipants),
		}
	}

	for i, p := range participants {
		if strings.TrimSpace(p.Name) == "" {
			return &ValidationError{
				Field:   FieldParticipants,
				Index:   i,
				Message: fmt.Sprintf("participant %d name cannot be empty", i+1),
			}
		}
	}

	return nil
}
