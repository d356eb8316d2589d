package broker

import (
	"errors"
	"fmt"
)

// Code categorizes a broker Error so that callers at the gRPC boundary can
// map it to a status code without string matching.
type Code string

// Error kinds surfaced by the broker.
const (
	CodeTopicNotFound            Code = "TOPIC_NOT_FOUND"
	CodeTopicAlreadyExists       Code = "TOPIC_ALREADY_EXISTS"
	CodeSubscriptionNotFound     Code = "SUBSCRIPTION_NOT_FOUND"
	CodeSubscriptionAlreadyExist Code = "SUBSCRIPTION_ALREADY_EXISTS"
	CodeAlreadySubscribed        Code = "ALREADY_SUBSCRIBED"
	CodeUnknownLease             Code = "UNKNOWN_LEASE"
	CodeInvalidArgument          Code = "INVALID_ARGUMENT"
	CodeInternal                 Code = "INTERNAL"
)

// Error is the broker's typed error. It wraps an optional underlying cause
// and carries a Code that the gRPC-shaping layer inspects via errors.As to
// choose a status code, rather than matching on error message text.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newErr(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newErrf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Is lets errors.Is(err, ErrTopicNotFound) succeed against any *Error
// sharing the same Code, not just a shared pointer.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// Sentinel instances for errors.Is comparisons where no extra context is
// needed.
var (
	ErrTopicNotFound        = newErr(CodeTopicNotFound, "topic not found")
	ErrTopicAlreadyExists   = newErr(CodeTopicAlreadyExists, "topic already exists")
	ErrSubscriptionNotFound = newErr(CodeSubscriptionNotFound, "subscription not found")
	ErrSubscriptionExists   = newErr(CodeSubscriptionAlreadyExist, "subscription already exists")
	ErrAlreadySubscribed    = newErr(CodeAlreadySubscribed, "subscription already has an active stream")
	ErrUnknownLease         = newErr(CodeUnknownLease, "lease is unknown, expired, or already resolved")
)

// InvalidArgument builds an Error for a malformed request.
func InvalidArgument(format string, args ...interface{}) *Error {
	return newErrf(CodeInvalidArgument, format, args...)
}

// Internal wraps an unexpected invariant violation.
func Internal(cause error, format string, args ...interface{}) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...), Err: cause}
}
