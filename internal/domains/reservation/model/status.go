package model

import (
	"fmt"
	"slices"
	"strings"

	"bistro/shared/failure"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// ActiveStatuses hold a table slot.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(value)))

	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return status, nil
	default:
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown reservation status %q", value)) // nolint:wrapcheck
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

func (s Status) IsActive() bool {
	return slices.Contains(ActiveStatuses, s)
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
