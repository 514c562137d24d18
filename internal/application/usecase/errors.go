package usecase

import (
	"errors"
	"strings"
)

var (
	// ErrCreateUnsupported is returned by sources that cannot create rows.
	ErrCreateUnsupported = errors.New("creating rows is not supported by this source")
	// ErrSuperseded is returned when a newer refresh replaced this one.
	ErrSuperseded = errors.New("refresh superseded by a newer request")
)

const genericMessage = "Something went wrong. Please try again."

// ValidationError blocks an action before any network call is made.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// FetchError is a failed read. Previously loaded rows are kept.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "load failed: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// CreateError is a failed write. Rows and the caller's form input are kept.
type CreateError struct {
	Err error
}

func (e *CreateError) Error() string { return "create failed: " + e.Err.Error() }
func (e *CreateError) Unwrap() error { return e.Err }

// UserMessage returns the single line shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var (
		validation *ValidationError
		fetch      *FetchError
		create     *CreateError
	)
	switch {
	case errors.As(err, &validation):
		return message(validation.Err)
	case errors.As(err, &fetch):
		return message(fetch.Err)
	case errors.As(err, &create):
		return message(create.Err)
	default:
		return message(err)
	}
}

func message(err error) string {
	if err == nil {
		return genericMessage
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return genericMessage
	}
	return msg
}
