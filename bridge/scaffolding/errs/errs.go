// Package errs provides the application error type handed back through the
// web framework. It knows how to encode itself per error class so handlers
// never build error bodies by hand.
package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode represents the class of an application error.
type ErrCode int

const (
	InvalidArgument ErrCode = iota + 1
	NotFound
	Internal
)

// FieldError reports a validation failure on a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error type. It carries the source location of
// the call site for logging.
type Error struct {
	Code     ErrCode      `json:"-"`
	Message  string       `json:"message"`
	Fields   []FieldError `json:"-"`
	FuncName string       `json:"-"`
	FileName string       `json:"-"`
}

// New constructs an error with the given code and message.
func New(code ErrCode, message string) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  message,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error with the given code and formatted message.
func Newf(code ErrCode, format string, args ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// NewFieldErrors constructs a validation error carrying field level detail.
func NewFieldErrors(fields ...FieldError) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     InvalidArgument,
		Message:  "validation failed",
		Fields:   fields,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus implements the web framework's status interface.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Encode implements the web.Encoder interface. The body shape depends on
// the error class: validation failures report a field error list, missing
// resources report a human readable message, and anything internal reports
// a single generic error string.
func (e *Error) Encode() ([]byte, string, error) {
	var body any

	switch e.Code {
	case InvalidArgument:
		fields := e.Fields
		if len(fields) == 0 {
			fields = []FieldError{{Field: "", Message: e.Message}}
		}
		body = struct {
			Errors []FieldError `json:"errors"`
		}{Errors: fields}

	case NotFound:
		body = struct {
			Message string `json:"message"`
		}{Message: e.Message}

	default:
		body = struct {
			Error string `json:"error"`
		}{Error: e.Message}
	}

	data, err := json.Marshal(body)
	return data, "application/json", err
}
