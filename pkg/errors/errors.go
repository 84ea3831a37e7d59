package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeNetwork      Code = "NETWORK_ERROR"
	CodeServer       Code = "SERVER_ERROR"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// Metadata describes how a code behaves from the client's point of
// view: whether the user retrying the action can plausibly help, and
// the message shown when the server supplied none.
type Metadata struct {
	Retryable      bool
	FallbackMsg    string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Retryable:      false,
		FallbackMsg:    "validation failed",
		DetailsAllowed: true,
	},
	CodeUnauthorized: {
		Retryable:   false,
		FallbackMsg: "authentication required",
	},
	CodeForbidden: {
		Retryable:   false,
		FallbackMsg: "access denied",
	},
	CodeNotFound: {
		Retryable:   false,
		FallbackMsg: "resource not found",
	},
	CodeConflict: {
		Retryable:   false,
		FallbackMsg: "conflict detected",
	},
	CodeNetwork: {
		Retryable:   true,
		FallbackMsg: "network error, please try again",
	},
	CodeServer: {
		Retryable:      true,
		FallbackMsg:    "server error",
		DetailsAllowed: true,
	},
	CodeInternal: {
		Retryable:   false,
		FallbackMsg: "internal error",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// FromHTTPStatus classifies a response status into a client error code.
func FromHTTPStatus(status int) Code {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return CodeValidation
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusForbidden:
		return CodeForbidden
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusConflict:
		return CodeConflict
	case status >= 500:
		return CodeServer
	default:
		return CodeInternal
	}
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

// UserMessage is what gets rendered near the triggering control: the
// server-supplied message where present, the code fallback otherwise.
func (e *Error) UserMessage() string {
	if e == nil {
		return ""
	}
	if e.message != "" {
		return e.message
	}
	return MetadataFor(e.code).FallbackMsg
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	typed := As(err)
	return typed != nil && typed.Code() == code
}
