package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteError(t *testing.T) {
	testCases := []struct {
		name      string
		err       *RemoteError
		message   string
		retryable bool
	}{
		{
			"Remote reported",
			&RemoteError{Status: http.StatusNotFound, Type: "ResourceNotFound", Message: "no such object", Resource: "record-1", Method: "describe"},
			"/record-1/describe: ResourceNotFound (404): no such object",
			false,
		},
		{
			"Server side",
			&RemoteError{Status: http.StatusServiceUnavailable, Type: "ServiceUnavailable", Message: "try later", Resource: "record-1", Method: "close"},
			"/record-1/close: ServiceUnavailable (503): try later",
			true,
		},
		{
			"Throttled",
			&RemoteError{Status: http.StatusTooManyRequests, Type: "TooManyRequests", Resource: "file-1", Method: "describe"},
			"/file-1/describe: TooManyRequests (429): ",
			true,
		},
		{
			"Transport",
			&RemoteError{Resource: "file-1", Method: "describe", Err: errors.New("connection refused")},
			"/file-1/describe: connection refused",
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			assert.Equal(t, tc.retryable, tc.err.Retryable())
		})
	}
}

func TestMatching(t *testing.T) {
	cause := errors.New("connection reset")
	remote := &RemoteError{Status: http.StatusUnprocessableEntity, Type: "InvalidState", Resource: "file-1", Method: "close", Err: cause}
	wrapped := fmt.Errorf("closing: %w", remote)

	assert.True(t, IsRemote(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "InvalidState", RemoteType(wrapped))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(wrapped))

	assert.False(t, IsRemote(ErrTimeout))
	assert.Equal(t, "", RemoteType(ErrTimeout))
	assert.Equal(t, -1, HTTPStatus(ErrTimeout))
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
}
