// Package errors defines the body of error responses and echo errors carrying them.
//
// The body has the form
//
//	{"message": {"reason": "...", "advice": "..."}}
//
// Causes are kept for logging and never serialized.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Message ErrorMessage `json:"message"`
}

type ErrorMessage struct {
	Reason string `json:"reason"`
	Advice string `json:"advice"`
	Cause  error  `json:"-"`
}

func (em *ErrorMessage) UnmarshalJSON(bytes []byte) error {
	f := new(struct {
		Reason *string `json:"reason"`
		Advice *string `json:"advice"`
	})
	if err := json.Unmarshal(bytes, f); err != nil {
		return err
	}

	if f.Reason == nil {
		return fmt.Errorf(`required field missing: "reason"`)
	}
	em.Reason = *f.Reason

	if f.Advice != nil {
		em.Advice = *f.Advice
	}
	return nil
}

// Response is the body which should be sent to clients.
func (e ErrorMessage) Response() ErrorResponse {
	return ErrorResponse{Message: ErrorMessage{Reason: e.Reason, Advice: e.Advice}}
}

func (e ErrorMessage) String() string {
	lines := []string{e.Reason}
	if e.Advice != "" {
		lines = append(lines, e.Advice)
	}
	if e.Cause != nil {
		lines = append(lines, fmt.Sprint(" caused by:", e.Cause.Error()))
	}
	return strings.Join(lines, "\n")
}

func (e ErrorMessage) Error() string {
	return e.String()
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}

type ErrorMessageOption func(in *ErrorMessage) *ErrorMessage

func WithAdvice(advice string) ErrorMessageOption {
	return func(in *ErrorMessage) *ErrorMessage {
		if advice != "" {
			in.Advice = advice
		}
		return in
	}
}

func WithError(err error) ErrorMessageOption {
	return func(in *ErrorMessage) *ErrorMessage {
		if err != nil {
			in.Cause = err
		}
		return in
	}
}

func NewErrorMessage(code int, reason string, opts ...ErrorMessageOption) *echo.HTTPError {
	msg := ErrorMessage{Reason: reason}
	for _, opt := range opts {
		msg = *opt(&msg)
	}

	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func BadRequest(advice string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusBadRequest,
		"bad request",
		WithAdvice(advice),
		WithError(err),
	)
}

func NotFound(advice string) *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, "not found", WithAdvice(advice))
}

// BadGateway is for failures of upstream services.
func BadGateway(advice string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusBadGateway,
		"upstream unavailable",
		WithAdvice(advice),
		WithError(err),
	)
}

func GatewayTimeout(advice string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusGatewayTimeout,
		"upstream timeout",
		WithAdvice(advice),
		WithError(err),
	)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		"unexpected error",
		WithAdvice("ask your system admin."),
		WithError(err),
	)
}

func TooManyRequests(advice string) *echo.HTTPError {
	return NewErrorMessage(http.StatusTooManyRequests, "too many requests", WithAdvice(advice))
}
