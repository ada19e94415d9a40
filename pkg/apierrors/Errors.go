package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidState    = errors.New("handle has no object identifier set")
	ErrTimeout         = errors.New("timed out waiting for object state")
	ErrUnsupported     = errors.New("operation not supported by object class")
	ErrUnexpectedState = errors.New("object reached an unexpected terminal state")
	ErrInvalidInput    = errors.New("invalid input")
)

// RemoteError is returned when the API server (or the path to it) fails a request.
// Status is zero when no HTTP response was received.
type RemoteError struct {
	Status   int    `json:"-"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	Resource string `json:"-"`
	Method   string `json:"-"`
	Err      error  `json:"-"`
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("/%s/%s: %s", e.Resource, e.Method, e.cause())
	}

	return fmt.Sprintf("/%s/%s: %s (%d): %s", e.Resource, e.Method, e.Type, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

// Retryable reports whether the request may succeed if sent again.
func (e *RemoteError) Retryable() bool {
	return e.Status == 0 || e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}

func IsRemote(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote)
}

func RemoteType(err error) string {
	var remote *RemoteError

	if errors.As(err, &remote) {
		return remote.Type
	}

	return ""
}

func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var remote *RemoteError

	if errors.As(err, &remote) {
		return remote.Status
	}

	return -1
}
