package file

import (
	"context"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
)

type File struct {
	*objects.Object
}

type CreateOptions struct {
	common.CreateOptions
	Media string
}

func NewRouter(invoker iinvoker.Invoker) *common.Endpoint {
	return common.NewEndpoint(invoker, static.CLASS_FILE, common.DataObjectHooks...)
}

func New(invoker iinvoker.Invoker, id string, workspace string, options ...objects.Option) *File {
	return &File{
		Object: objects.New(NewRouter(invoker), common.NewContainer(invoker), id, workspace, options...),
	}
}

// Create makes a new, open file. Content upload is not part of this package.
func Create(ctx context.Context, invoker iinvoker.Invoker, workspace string, options CreateOptions, handle ...objects.Option) (*File, error) {
	if options.Project == "" {
		options.Project = workspace
	}

	extra := map[string]any{}

	if options.Media != "" {
		extra["media"] = options.Media
	}

	input, err := common.BuildCreateRequest(options.CreateOptions, extra)

	if err != nil {
		return nil, err
	}

	id, err := common.Create(ctx, invoker, static.CLASS_FILE, input)

	if err != nil {
		return nil, err
	}

	return New(invoker, id, workspace, append(handle, objects.WithProject(options.Project))...), nil
}

// Close closes the file if it is still open. With block set it returns once the file is closed.
func (file *File) Close(ctx context.Context, block bool) error {
	return common.CloseAndWait(ctx, file.Object, block, file.WaitTimeout())
}

func (file *File) WaitOnClose(ctx context.Context, timeout time.Duration) error {
	return file.WaitOnState(ctx, static.STATE_CLOSED, timeout)
}

func (file *File) Clone(ctx context.Context, project string, folder string) (*File, error) {
	clone, err := file.Object.Clone(ctx, project, folder)

	if err != nil {
		return nil, err
	}

	return &File{Object: clone}, nil
}
