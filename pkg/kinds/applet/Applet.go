package applet

import (
	"context"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/kinds/job"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/pkg/errors"
)

type Applet struct {
	*objects.Object
	invoker iinvoker.Invoker
}

type CreateOptions struct {
	common.CreateOptions
	DXAPI   string
	RunSpec map[string]any
	Inputs  []map[string]any
	Outputs []map[string]any
}

func NewRouter(invoker iinvoker.Invoker) *common.Endpoint {
	return common.NewEndpoint(invoker, static.CLASS_APPLET, common.DataObjectHooks...)
}

func New(invoker iinvoker.Invoker, id string, workspace string, options ...objects.Option) *Applet {
	return &Applet{
		Object:  objects.New(NewRouter(invoker), common.NewContainer(invoker), id, workspace, options...),
		invoker: invoker,
	}
}

// Create makes a new applet. Applets are closed on creation.
func Create(ctx context.Context, invoker iinvoker.Invoker, workspace string, options CreateOptions, handle ...objects.Option) (*Applet, error) {
	if options.RunSpec == nil {
		return nil, errors.Wrap(apierrors.ErrInvalidInput, "an applet needs a run specification")
	}

	if options.Project == "" {
		options.Project = workspace
	}

	extra := map[string]any{
		"runSpec": options.RunSpec,
		"dxapi":   options.DXAPI,
	}

	if options.Inputs != nil {
		extra["inputSpec"] = options.Inputs
	}

	if options.Outputs != nil {
		extra["outputSpec"] = options.Outputs
	}

	input, err := common.BuildCreateRequest(options.CreateOptions, extra)

	if err != nil {
		return nil, err
	}

	id, err := common.Create(ctx, invoker, static.CLASS_APPLET, input)

	if err != nil {
		return nil, err
	}

	return New(invoker, id, workspace, append(handle, objects.WithProject(options.Project))...), nil
}

// Run starts the applet. Without options.Project the job runs in the applet's project.
func (applet *Applet) Run(ctx context.Context, options common.RunOptions) (*job.Job, error) {
	if applet.ID() == "" {
		return nil, apierrors.ErrInvalidState
	}

	if options.Project == "" {
		options.Project = applet.ProjectID
	}

	id, err := common.Run(ctx, applet.invoker, applet.ID(), options)

	if err != nil {
		return nil, err
	}

	return job.New(applet.invoker, id, options.Project, applet.Options()...), nil
}

func (applet *Applet) Clone(ctx context.Context, project string, folder string) (*Applet, error) {
	clone, err := applet.Object.Clone(ctx, project, folder)

	if err != nil {
		return nil, err
	}

	return &Applet{Object: clone, invoker: applet.invoker}, nil
}
