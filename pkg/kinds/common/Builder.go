package common

import (
	"context"

	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nonce marks a create request so that a retried request does not create twice.
func Nonce() string {
	return uuid.NewString()
}

// BuildCreateRequest merges the class-specific extra fields into the common create fields and
// attaches a nonce.
func BuildCreateRequest(options CreateOptions, extra map[string]any) ([]byte, error) {
	encoded, err := json.Marshal(options)

	if err != nil {
		return nil, err
	}

	request := make(map[string]any)

	if err = json.Unmarshal(encoded, &request); err != nil {
		return nil, err
	}

	for key, value := range extra {
		request[key] = value
	}

	request["nonce"] = Nonce()

	return json.Marshal(request)
}

// Create calls /<resource>/new and returns the new object's ID.
func Create(ctx context.Context, invoker iinvoker.Invoker, resource string, input []byte) (string, error) {
	response, err := invoker.Invoke(ctx, resource, static.METHOD_NEW, input)

	if err != nil {
		return "", err
	}

	return DecodeID(response)
}

// Run starts executable and returns the ID of the resulting job.
func Run(ctx context.Context, invoker iinvoker.Invoker, executable string, options RunOptions) (string, error) {
	if options.Input == nil {
		options.Input = map[string]any{}
	}

	input, err := json.Marshal(options)

	if err != nil {
		return "", err
	}

	response, err := invoker.Invoke(ctx, executable, static.METHOD_RUN, input)

	if err != nil {
		return "", err
	}

	return DecodeID(response)
}
