package model

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"bistro/shared/constant"
	"bistro/shared/failure"
)

const (
	MinNameLength          = 2
	MaxSpecialRequestsSize = 500
)

var (
	emailPattern = regexp.MustCompile(constant.PatternEmail)
	phonePattern = regexp.MustCompile(constant.PatternPhone)
)

// CustomerInfo is the contact data of whoever booked. Fields are normalized on construction.
type CustomerInfo struct {
	name            string
	email           string
	phone           string
	specialRequests string
}

func NewCustomerInfo(name, email, phone, specialRequests string) (CustomerInfo, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)
	specialRequests = strings.TrimSpace(specialRequests)

	if utf8.RuneCountInString(name) < MinNameLength {
		return CustomerInfo{}, failure.BadRequestFromString(fmt.Sprintf("customer name must have at least %d characters", MinNameLength)) // nolint:wrapcheck
	}

	if !emailPattern.MatchString(email) {
		return CustomerInfo{}, failure.BadRequestFromString("customer email is invalid") // nolint:wrapcheck
	}

	if !phonePattern.MatchString(phone) {
		return CustomerInfo{}, failure.BadRequestFromString("customer phone is invalid") // nolint:wrapcheck
	}

	if utf8.RuneCountInString(specialRequests) > MaxSpecialRequestsSize {
		return CustomerInfo{}, failure.BadRequestFromString(fmt.Sprintf("special requests must not exceed %d characters", MaxSpecialRequestsSize)) // nolint:wrapcheck
	}

	return CustomerInfo{
		name:            name,
		email:           email,
		phone:           phone,
		specialRequests: specialRequests,
	}, nil
}

func (c CustomerInfo) Name() string {
	return c.name
}

func (c CustomerInfo) Email() string {
	return c.email
}

func (c CustomerInfo) Phone() string {
	return c.phone
}

func (c CustomerInfo) SpecialRequests() string {
	return c.specialRequests
}

func (c CustomerInfo) HasSpecialRequests() bool {
	return c.specialRequests != ""
}

func (c CustomerInfo) IsZero() bool {
	return c.email == ""
}

// DisplayName capitalizes each word of the name.
func (c CustomerInfo) DisplayName() string {
	words := strings.Fields(c.name)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(r)) + strings.ToLower(w[size:])
	}

	return strings.Join(words, " ")
}
