package iinvoker

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=IInvoker.go -destination=mock/IInvoker.go

// Invoker executes one API call: POST /<resource>/<method> with payload as the JSON body.
// Resource is either an object identifier or a class name (e.g. "record" for /record/new).
// Failures are reported as *apierrors.RemoteError.
type Invoker interface {
	Invoke(ctx context.Context, resource string, method string, payload []byte) (json.RawMessage, error)
}
