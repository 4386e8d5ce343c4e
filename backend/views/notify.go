// Package views keeps the state of the operator's screens: list search and
// paging, form fields, and the toasts they raise.
package views

import (
	"errors"
	"log"

	"eduadmin/backend/client"
	"eduadmin/backend/session"
	"eduadmin/backend/validation"
)

// Notifier shows toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier prints toasts through a logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Success(msg string) { n.Logger.Printf("OK: %s", msg) }
func (n LogNotifier) Error(msg string)   { n.Logger.Printf("ERROR: %s", msg) }

const genericFailure = "Something went wrong, please try again"

// Message is the toast text for err: the backend's own message when there
// is one, else a generic text.
func Message(err error) string {
	var apiErr *client.APIError
	var ve *validation.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrNotAuthorized):
		return "Not authorized, please log in"
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.As(err, &ve):
		return ve.Error()
	default:
		return genericFailure
	}
}
