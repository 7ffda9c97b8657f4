package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"max":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"email":       "{field} must be a valid email address",
	"phone":       "{field} must be a valid phone number",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// Length rules read better in characters when applied to text.
var stringMessages = map[string]string{
	"max": "{field} must be at most {param} characters",
	"min": "{field} must be at least {param} characters",
}

// message renders every violation, in field order, joined by "; ".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		parts = append(parts, describe(valErr))
	}

	return strings.Join(parts, "; ")
}

func describe(valErr val.FieldError) string {
	tmpl, ok := stringMessages[valErr.Tag()]
	if !ok || valErr.Kind() != reflect.String {
		tmpl, ok = messages[valErr.Tag()]
	}

	if !ok {
		return valErr.Error()
	}

	return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(tmpl)
}
