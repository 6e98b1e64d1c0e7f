package deepgram

import (
	"errors"
	"fmt"
)

type ErrorStatus string

const (
	ErrorStatusKeyNotFound        ErrorStatus = "key_not_found"
	ErrorStatusInvalidArgument    ErrorStatus = "invalid_argument"
	ErrorStatusAPIKeyFetchFailed  ErrorStatus = "api_key_fetch_failed"
	ErrorStatusQueueLimitExceeded ErrorStatus = "queue_limit_exceeded"
	ErrorStatusAPIError           ErrorStatus = "api_error"
	ErrorStatusAuthError          ErrorStatus = "auth_error"
	ErrorStatusBadRequest         ErrorStatus = "bad_request"
	ErrorStatusQuotaExceeded      ErrorStatus = "quota_exceeded"
	ErrorStatusNetworkError       ErrorStatus = "network_error"
	ErrorStatusWebSocketError     ErrorStatus = "websocket_error"
	ErrorStatusConnectionClosed   ErrorStatus = "connection_closed"
	ErrorStatusInvalidState       ErrorStatus = "invalid_state"
)

type Error struct {
	Status    ErrorStatus
	Message   string
	Code      *int
	RequestID string
	Cause     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.RequestID != "" {
		msg += " (request_id=" + e.RequestID + ")"
	}
	if e.Code != nil {
		return fmt.Sprintf("deepgram: %s (code=%d): %s", e.Status, *e.Code, msg)
	}
	return fmt.Sprintf("deepgram: %s: %s", e.Status, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewError(status ErrorStatus, message string) *Error {
	return &Error{
		Status:  status,
		Message: message,
	}
}

func NewErrorWithCode(status ErrorStatus, message string, code int) *Error {
	return &Error{
		Status:  status,
		Message: message,
		Code:    &code,
	}
}

func NewErrorWithCause(status ErrorStatus, message string, cause error) *Error {
	return &Error{
		Status:  status,
		Message: message,
		Cause:   cause,
	}
}

// NewKeyNotFoundError reports a key missing from a record's serialized mapping.
func NewKeyNotFoundError(key string) *Error {
	return NewError(ErrorStatusKeyNotFound, fmt.Sprintf("key %q not found", key))
}

func IsErrorStatus(err error, status ErrorStatus) bool {
	var dgErr *Error
	if errors.As(err, &dgErr) {
		return dgErr.Status == status
	}
	return false
}

var (
	ErrClientNotConnected  = NewError(ErrorStatusInvalidState, "client is not connected")
	ErrClientAlreadyActive = NewError(ErrorStatusInvalidState, "client is already active")
	ErrClientClosed        = NewError(ErrorStatusInvalidState, "client is closed")
	ErrEmptySource         = NewError(ErrorStatusInvalidArgument, "source has no payload")
	ErrCallbackNotAllowed  = NewError(ErrorStatusInvalidArgument, "callback is set; use the callback variant of this method")
	ErrCallbackRequired    = NewError(ErrorStatusInvalidArgument, "callback is required for this method")
)

// MapAPIError maps an HTTP status or close code to a typed ErrorStatus.
func MapAPIError(message string, code int) *Error {
	var status ErrorStatus
	switch code {
	case 401, 403:
		status = ErrorStatusAuthError
	case 400, 413, 415, 422:
		status = ErrorStatusBadRequest
	case 402, 429:
		status = ErrorStatusQuotaExceeded
	case 408, 500, 502, 503, 504:
		status = ErrorStatusNetworkError
	default:
		status = ErrorStatusAPIError
	}
	return NewErrorWithCode(status, message, code)
}
