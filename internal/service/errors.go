package service

import "errors"

// ErrInvalidArgument matches every error caused by a bad transfer request.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned for transfer inputs that can never succeed.
// errors.Is(err, ErrInvalidArgument) holds for all of them.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string { return e.Reason }

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

var (
	ErrSenderNotFound    = &InvalidArgumentError{Reason: "the sender cannot be found"}
	ErrRecipientNotFound = &InvalidArgumentError{Reason: "the recipient cannot be found"}
	ErrNegativeAmount    = &InvalidArgumentError{Reason: "the amount to send cannot be negative"}
)
