// Package domain holds the corgi's entities, scoring rules and errors.
//
// The errors here describe what went wrong for the bot, never how to
// report it: the HTTP adapter picks status codes, stores only wrap.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a community has nothing of the requested kind yet.
	ErrNotFound = errors.New("not found")

	// ErrValidation means caller input broke a rule of the bot.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable means the store backend did not answer.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names what was missing and where.
type NotFoundError struct {
	Entity      string
	CommunityID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found in community %d", e.Entity, e.CommunityID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError reports that communityID has no entity yet, as when
// nobody has stored a quote there.
func NewNotFoundError(entity string, communityID int64) error {
	return &NotFoundError{Entity: entity, CommunityID: communityID}
}

// ValidationError is a rejected input. Value, when set, is what the caller
// sent.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return "validation failed for " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError is a store backend failing to answer. Service is the
// backend name as reported by Store.Name. Cause, when set, stays reachable
// through errors.Is and errors.As so callers can still spot a deadline.
type UnavailableError struct {
	Service string
	Reason  string
	Cause   error
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("service %q unavailable", e.Service)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *UnavailableError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrUnavailable, e.Cause}
	}

	return []error{ErrUnavailable}
}

func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// WrapUnavailable marks a driver error from op as a backend failure. It
// returns nil for a nil cause, so stores can wrap every call result.
func WrapUnavailable(service, op string, cause error) error {
	if cause == nil {
		return nil
	}

	return &UnavailableError{Service: service, Reason: op + ": " + cause.Error(), Cause: cause}
}

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool  { return errors.Is(err, ErrValidation) }
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
