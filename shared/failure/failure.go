package failure

import (
	"errors"
	"net/http"
	"slices"
)

// Reason codes let callers tell failures with the same HTTP code apart.
const (
	ReasonValidation        = "validation"
	ReasonNotFound          = "not_found"
	ReasonCapacity          = "capacity"
	ReasonOutOfHours        = "out_of_hours"
	ReasonLeadTime          = "lead_time"
	ReasonHorizon           = "horizon"
	ReasonConflict          = "conflict"
	ReasonInvalidTransition = "invalid_state_transition"
)

var availabilityReasons = []string{ReasonOutOfHours, ReasonLeadTime, ReasonHorizon, ReasonConflict}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter", Reason: ReasonValidation}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter", Reason: ReasonValidation}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Reason:  ReasonValidation,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonValidation,
	}
}

// Validation is a bad request carrying a specific reason, e.g. a reservation time past the horizon.
func Validation(reason, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  reason,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Reason:  ReasonNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Reason:  ReasonConflict,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// Capacity is returned when a table is inactive or too small for the party.
func Capacity(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Reason:  ReasonCapacity,
	}
}

// Unavailable is an availability rule violation other than an overlap.
func Unavailable(reason, msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Reason:  reason,
	}
}

func InvalidStateTransition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Reason:  ReasonInvalidTransition,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason code of an error interface, empty when err is not a Failure.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

func HasReason(err error, reason string) bool {
	return err != nil && GetReason(err) == reason
}

func IsValidation(err error) bool {
	return err != nil && GetCode(err) == http.StatusBadRequest
}

func IsAvailability(err error) bool {
	return slices.Contains(availabilityReasons, GetReason(err))
}
