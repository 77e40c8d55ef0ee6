// Package apierror holds the single application error kind that the HTTP
// layer renders as a structured JSON body.
package apierror

import (
	"fmt"
	"net/http"
)

// Error carries a message, the HTTP status to answer with, and optional extra
// fields merged into the response body.
type Error struct {
	Message    string
	StatusCode int
	Payload    map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// ToMap renders the body as {message, ...payload}. Payload cannot override
// the message key.
func (e *Error) ToMap() map[string]any {
	out := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		out[k] = v
	}
	out["message"] = e.Message
	return out
}

// With returns a copy with key added to the payload.
func (e *Error) With(key string, value any) *Error {
	payload := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		payload[k] = v
	}
	payload[key] = value
	return &Error{Message: e.Message, StatusCode: e.StatusCode, Payload: payload}
}

func New(status int, message string) *Error {
	return &Error{Message: message, StatusCode: status}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}
