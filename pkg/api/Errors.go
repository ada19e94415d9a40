package api

import (
	"fmt"
	"net/http"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
)

const (
	ERROR_NOT_FOUND        = "ResourceNotFound"
	ERROR_INVALID_INPUT    = "InvalidInput"
	ERROR_INVALID_STATE    = "InvalidState"
	ERROR_METHOD_NOT_FOUND = "MethodNotFound"
	ERROR_INTERNAL         = "InternalError"
)

func remote(status int, kind string, format string, args ...any) *apierrors.RemoteError {
	return &apierrors.RemoteError{
		Status:  status,
		Type:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func notFound(format string, args ...any) error {
	return remote(http.StatusNotFound, ERROR_NOT_FOUND, format, args...)
}

func invalidInput(format string, args ...any) error {
	return remote(http.StatusBadRequest, ERROR_INVALID_INPUT, format, args...)
}

func invalidState(format string, args ...any) error {
	return remote(http.StatusUnprocessableEntity, ERROR_INVALID_STATE, format, args...)
}

func methodNotFound(resource string, method string) error {
	return remote(http.StatusNotFound, ERROR_METHOD_NOT_FOUND, "/%s/%s is not a known route", resource, method)
}
