package iresponse

import "github.com/dxtoolkit/dxgo/pkg/apierrors"

// Response is the error envelope the API server sends with any non-2xx status.
type Response struct {
	Error *apierrors.RemoteError `json:"error,omitempty"`
}
