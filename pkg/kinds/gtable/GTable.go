package gtable

import (
	"context"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/pkg/errors"
)

type GTable struct {
	*objects.Object
}

type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateOptions struct {
	common.CreateOptions
	Columns []Column
}

func NewRouter(invoker iinvoker.Invoker) *common.Endpoint {
	return common.NewEndpoint(invoker, static.CLASS_GTABLE, common.DataObjectHooks...)
}

func New(invoker iinvoker.Invoker, id string, workspace string, options ...objects.Option) *GTable {
	return &GTable{
		Object: objects.New(NewRouter(invoker), common.NewContainer(invoker), id, workspace, options...),
	}
}

func Create(ctx context.Context, invoker iinvoker.Invoker, workspace string, options CreateOptions, handle ...objects.Option) (*GTable, error) {
	if len(options.Columns) == 0 {
		return nil, errors.Wrap(apierrors.ErrInvalidInput, "a gtable needs at least one column")
	}

	if options.Project == "" {
		options.Project = workspace
	}

	input, err := common.BuildCreateRequest(options.CreateOptions, map[string]any{"columns": options.Columns})

	if err != nil {
		return nil, err
	}

	id, err := common.Create(ctx, invoker, static.CLASS_GTABLE, input)

	if err != nil {
		return nil, err
	}

	return New(invoker, id, workspace, append(handle, objects.WithProject(options.Project))...), nil
}

func (table *GTable) Close(ctx context.Context, block bool) error {
	return common.CloseAndWait(ctx, table.Object, block, table.WaitTimeout())
}

func (table *GTable) WaitOnClose(ctx context.Context, timeout time.Duration) error {
	return table.WaitOnState(ctx, static.STATE_CLOSED, timeout)
}

func (table *GTable) Clone(ctx context.Context, project string, folder string) (*GTable, error) {
	clone, err := table.Object.Clone(ctx, project, folder)

	if err != nil {
		return nil, err
	}

	return &GTable{Object: clone}, nil
}
