package iobjects

//go:generate mockgen -source=IObjects.go -destination=mock/IObjects.go

import (
	"context"
	"encoding/json"
)

// Router routes the per-object hooks of a data object class to that class's endpoints.
// Every hook receives the object identifier and an already-serialized JSON payload.
// Hooks a class does not support return apierrors.ErrUnsupported without calling out.
type Router interface {
	Class() string

	Describe(ctx context.Context, id string, input []byte) (json.RawMessage, error)
	AddTypes(ctx context.Context, id string, input []byte) error
	RemoveTypes(ctx context.Context, id string, input []byte) error
	GetDetails(ctx context.Context, id string, input []byte) (json.RawMessage, error)
	SetDetails(ctx context.Context, id string, input []byte) error
	SetVisibility(ctx context.Context, id string, input []byte) error
	Rename(ctx context.Context, id string, input []byte) error
	SetProperties(ctx context.Context, id string, input []byte) error
	AddTags(ctx context.Context, id string, input []byte) error
	RemoveTags(ctx context.Context, id string, input []byte) error
	Close(ctx context.Context, id string, input []byte) error
	ListProjects(ctx context.Context, id string, input []byte) (json.RawMessage, error)
}

// Container is the project-side endpoint family used for clone, move and remove.
type Container interface {
	Clone(ctx context.Context, project string, input []byte) (json.RawMessage, error)
	Move(ctx context.Context, project string, input []byte) error
	RemoveObjects(ctx context.Context, project string, input []byte) error
}
