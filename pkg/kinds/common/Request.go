package common

import (
	"context"
	json2 "encoding/json"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/pkg/errors"
)

// DataObjectHooks is the full hook set of classes that hold data.
var DataObjectHooks = []string{
	static.METHOD_DESCRIBE,
	static.METHOD_ADD_TYPES,
	static.METHOD_REMOVE_TYPES,
	static.METHOD_GET_DETAILS,
	static.METHOD_SET_DETAILS,
	static.METHOD_SET_VISIBILITY,
	static.METHOD_RENAME,
	static.METHOD_SET_PROPERTIES,
	static.METHOD_ADD_TAGS,
	static.METHOD_REMOVE_TAGS,
	static.METHOD_CLOSE,
	static.METHOD_LIST_PROJECTS,
}

func NewEndpoint(invoker iinvoker.Invoker, kind string, hooks ...string) *Endpoint {
	endpoint := &Endpoint{
		Invoker: invoker,
		Kind:    kind,
		Hooks:   make(map[string]bool),
	}

	for _, hook := range hooks {
		endpoint.Hooks[hook] = true
	}

	return endpoint
}

func (endpoint *Endpoint) Class() string {
	return endpoint.Kind
}

func (endpoint *Endpoint) Supports(method string) bool {
	return endpoint.Hooks[method]
}

func (endpoint *Endpoint) Call(ctx context.Context, id string, method string, input []byte) (json2.RawMessage, error) {
	if !endpoint.Supports(method) {
		return nil, errors.Wrapf(apierrors.ErrUnsupported, "%s objects do not support %s", endpoint.Kind, method)
	}

	return endpoint.Invoker.Invoke(ctx, id, method, input)
}

func (endpoint *Endpoint) Describe(ctx context.Context, id string, input []byte) (json2.RawMessage, error) {
	return endpoint.Call(ctx, id, static.METHOD_DESCRIBE, input)
}

func (endpoint *Endpoint) AddTypes(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_ADD_TYPES, input)
}

func (endpoint *Endpoint) RemoveTypes(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_REMOVE_TYPES, input)
}

func (endpoint *Endpoint) GetDetails(ctx context.Context, id string, input []byte) (json2.RawMessage, error) {
	return endpoint.Call(ctx, id, static.METHOD_GET_DETAILS, input)
}

func (endpoint *Endpoint) SetDetails(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_SET_DETAILS, input)
}

func (endpoint *Endpoint) SetVisibility(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_SET_VISIBILITY, input)
}

func (endpoint *Endpoint) Rename(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_RENAME, input)
}

func (endpoint *Endpoint) SetProperties(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_SET_PROPERTIES, input)
}

func (endpoint *Endpoint) AddTags(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_ADD_TAGS, input)
}

func (endpoint *Endpoint) RemoveTags(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_REMOVE_TAGS, input)
}

func (endpoint *Endpoint) Close(ctx context.Context, id string, input []byte) error {
	return endpoint.exec(ctx, id, static.METHOD_CLOSE, input)
}

func (endpoint *Endpoint) ListProjects(ctx context.Context, id string, input []byte) (json2.RawMessage, error) {
	return endpoint.Call(ctx, id, static.METHOD_LIST_PROJECTS, input)
}

func (endpoint *Endpoint) exec(ctx context.Context, id string, method string, input []byte) error {
	_, err := endpoint.Call(ctx, id, method, input)
	return err
}

func NewContainer(invoker iinvoker.Invoker) *Container {
	return &Container{Invoker: invoker}
}

func (container *Container) Clone(ctx context.Context, project string, input []byte) (json2.RawMessage, error) {
	return container.Invoker.Invoke(ctx, project, static.METHOD_CLONE, input)
}

func (container *Container) Move(ctx context.Context, project string, input []byte) error {
	_, err := container.Invoker.Invoke(ctx, project, static.METHOD_MOVE, input)
	return err
}

func (container *Container) RemoveObjects(ctx context.Context, project string, input []byte) error {
	_, err := container.Invoker.Invoke(ctx, project, static.METHOD_REMOVE_OBJECTS, input)
	return err
}
