package inventory

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// StoreInput carries the fields of a store to create.
type StoreInput struct {
	Name     string
	Code     string
	Manager  string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	ZipCode  string
	Country  string
	Timezone string
	IsActive bool
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (in StoreInput) Trimmed() StoreInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.TrimSpace(in.Code)
	in.Manager = strings.TrimSpace(in.Manager)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.ZipCode = strings.TrimSpace(in.ZipCode)
	in.Country = strings.TrimSpace(in.Country)
	in.Timezone = strings.TrimSpace(in.Timezone)
	return in
}

// FieldError is a problem with one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// FieldErrors collects every field problem found by a validation pass.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the input without any I/O.
func (in StoreInput) Validate() error {
	in = in.Trimmed()
	var errs FieldErrors
	required := func(field, value, label string) {
		if value == "" {
			errs = append(errs, FieldError{Field: field, Message: label + " is required"})
		}
	}
	maxLen := func(field, value, label string, limit int) {
		if utf8.RuneCountInString(value) > limit {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("%s must not exceed %d characters", label, limit)})
		}
	}

	required("name", in.Name, "Store name")
	required("code", in.Code, "Store code")
	maxLen("name", in.Name, "Store name", 255)
	maxLen("code", in.Code, "Store code", 50)
	maxLen("phone", in.Phone, "Phone", 50)
	maxLen("city", in.City, "City", 100)
	maxLen("country", in.Country, "Country", 100)
	maxLen("timezone", in.Timezone, "Timezone", 100)
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "Invalid email format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
