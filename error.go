package novelgrab

import (
	"errors"
	"fmt"
)

// Application error codes. These map failure causes to machine-readable
// categories; transport layers translate them to status codes.
const (
	EINVALID      = "invalid"      // input validation failed
	ENOTFOUND     = "not_found"    // target unreachable or missing
	EFORBIDDEN    = "forbidden"    // target refused access (anti-bot, 403)
	ETIMEOUT      = "timeout"      // transient network failure, retries exhausted
	EUNAVAILABLE  = "unavailable"  // upstream server error (5xx)
	EEXTRACT      = "extract"      // no usable content could be extracted
	ECONTAMINATED = "contaminated" // extracted content polluted by reader chrome
	EINTERNAL     = "internal"
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("novelgrab error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
