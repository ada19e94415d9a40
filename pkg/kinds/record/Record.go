package record

import (
	"context"

	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
)

type Record struct {
	*objects.Object
}

func NewRouter(invoker iinvoker.Invoker) *common.Endpoint {
	return common.NewEndpoint(invoker, static.CLASS_RECORD, common.DataObjectHooks...)
}

func New(invoker iinvoker.Invoker, id string, workspace string, options ...objects.Option) *Record {
	return &Record{
		Object: objects.New(NewRouter(invoker), common.NewContainer(invoker), id, workspace, options...),
	}
}

// Create makes a new record in options.Project, or in the workspace when no project is given.
func Create(ctx context.Context, invoker iinvoker.Invoker, workspace string, options common.CreateOptions, handle ...objects.Option) (*Record, error) {
	if options.Project == "" {
		options.Project = workspace
	}

	input, err := common.BuildCreateRequest(options, nil)

	if err != nil {
		return nil, err
	}

	id, err := common.Create(ctx, invoker, static.CLASS_RECORD, input)

	if err != nil {
		return nil, err
	}

	return New(invoker, id, workspace, append(handle, objects.WithProject(options.Project))...), nil
}

// Clone copies the record into folder of project and returns a handle on the copy.
func (record *Record) Clone(ctx context.Context, project string, folder string) (*Record, error) {
	clone, err := record.Object.Clone(ctx, project, folder)

	if err != nil {
		return nil, err
	}

	return &Record{Object: clone}, nil
}
