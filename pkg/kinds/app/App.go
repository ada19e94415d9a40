package app

import (
	"context"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/kinds/job"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
)

var hooks = []string{
	static.METHOD_DESCRIBE,
	static.METHOD_ADD_TAGS,
	static.METHOD_REMOVE_TAGS,
}

// App is a handle on a published app. Apps are global, so the project is only used as the
// default project of the jobs they run.
type App struct {
	*objects.Object
	invoker iinvoker.Invoker
}

func NewRouter(invoker iinvoker.Invoker) *common.Endpoint {
	return common.NewEndpoint(invoker, static.CLASS_APP, hooks...)
}

func New(invoker iinvoker.Invoker, id string, workspace string, options ...objects.Option) *App {
	return &App{
		Object:  objects.New(NewRouter(invoker), common.NewContainer(invoker), id, workspace, options...),
		invoker: invoker,
	}
}

func (app *App) Run(ctx context.Context, options common.RunOptions) (*job.Job, error) {
	if app.ID() == "" {
		return nil, apierrors.ErrInvalidState
	}

	if options.Project == "" {
		options.Project = app.ProjectID
	}

	id, err := common.Run(ctx, app.invoker, app.ID(), options)

	if err != nil {
		return nil, err
	}

	return job.New(app.invoker, id, options.Project, app.Options()...), nil
}
