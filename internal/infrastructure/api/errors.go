package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

const genericMessage = "Something went wrong. Please try again."

// Error is a failed backend request, reduced to a message fit for display.
type Error struct {
	// Status is the HTTP status code, or zero when no response arrived.
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return genericMessage
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns the most specific human-readable text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return genericMessage
}

func transportError(err error) *Error {
	msg := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		msg = urlErr.Err.Error()
	}
	return &Error{Message: msg, Err: err}
}

func statusError(status int, body []byte) *Error {
	msg := extractMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = genericMessage
	}
	return &Error{Status: status, Message: msg}
}

// extractMessage looks for a server-provided message in the common error
// body layouts.
func extractMessage(body []byte) string {
	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return msg
	}
	if len(payload.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(payload.Error, &nested) == nil && strings.TrimSpace(nested.Message) != "" {
			return strings.TrimSpace(nested.Message)
		}
		var flat string
		if json.Unmarshal(payload.Error, &flat) == nil && strings.TrimSpace(flat) != "" {
			return strings.TrimSpace(flat)
		}
	}
	for _, e := range payload.Errors {
		if msg := strings.TrimSpace(e.Message); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(payload.Detail)
}
