package services

import (
	"errors"
	"fmt"
	"log"
)

// ErrorKind classifies service failures; handlers turn each kind into one
// HTTP status.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindNegotiation ErrorKind = "negotiation"
	KindNotFound    ErrorKind = "not_found"
	KindConflict    ErrorKind = "conflict"
	KindInternal    ErrorKind = "internal"
)

// Caller-facing messages. They are categorical on purpose and never carry
// field names or driver detail.
const (
	MsgMissingFields     = "Missing Mandatory Fields."
	MsgInvalidPage       = "Invalid Page or Page Size."
	MsgNoActiveJobs      = "No Active Jobs."
	MsgMissingAccept     = "Missing Accept Headers."
	MsgApplicationExists = "Application Already Exists."
	MsgDownstream        = "There is an error on the downstream server, please retry again later."
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a service error, or KindInternal for anything
// that did not come from this package.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

func validationError(message string, err error) error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

func notFoundError(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func internalError(op string, err error) error {
	log.Printf("❌ Failed to %s: %v\n", op, err)
	return &Error{Kind: KindInternal, Message: MsgDownstream, Err: fmt.Errorf("failed to %s: %w", op, err)}
}
