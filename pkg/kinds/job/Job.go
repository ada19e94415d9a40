package job

import (
	"context"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var hooks = []string{
	static.METHOD_DESCRIBE,
	static.METHOD_SET_PROPERTIES,
	static.METHOD_ADD_TAGS,
	static.METHOD_REMOVE_TAGS,
}

// Job is a handle on an execution. Jobs carry tags and properties but no details or types,
// and live outside any project folder.
type Job struct {
	*objects.Object
	invoker iinvoker.Invoker
}

type CreateOptions struct {
	Input     any    `json:"input"`
	Function  string `json:"function"`
	Name      string `json:"name,omitempty"`
	Resources any    `json:"systemRequirements,omitempty"`
}

func NewRouter(invoker iinvoker.Invoker) *common.Endpoint {
	return common.NewEndpoint(invoker, static.CLASS_JOB, hooks...)
}

func New(invoker iinvoker.Invoker, id string, workspace string, options ...objects.Option) *Job {
	return &Job{
		Object:  objects.New(NewRouter(invoker), common.NewContainer(invoker), id, workspace, options...),
		invoker: invoker,
	}
}

// Create starts a subjob running function of the current executable.
func Create(ctx context.Context, invoker iinvoker.Invoker, workspace string, options CreateOptions, handle ...objects.Option) (*Job, error) {
	if options.Input == nil {
		options.Input = map[string]any{}
	}

	encoded, err := json.Marshal(options)

	if err != nil {
		return nil, err
	}

	request := map[string]any{}

	if err = json.Unmarshal(encoded, &request); err != nil {
		return nil, err
	}

	request["nonce"] = common.Nonce()

	input, err := json.Marshal(request)

	if err != nil {
		return nil, err
	}

	id, err := common.Create(ctx, invoker, static.CLASS_JOB, input)

	if err != nil {
		return nil, err
	}

	return New(invoker, id, workspace, handle...), nil
}

func (job *Job) Terminate(ctx context.Context) error {
	if job.ID() == "" {
		return apierrors.ErrInvalidState
	}

	_, err := job.invoker.Invoke(ctx, job.ID(), static.METHOD_TERMINATE, []byte("{}"))
	return err
}

func (job *Job) GetState(ctx context.Context) (string, error) {
	description, err := job.Describe(ctx, objects.DescribeOptions{})

	if err != nil {
		return "", err
	}

	return description.State, nil
}

// WaitOnDone waits for the job to finish. A job that fails or is terminated ends the wait
// with apierrors.ErrUnexpectedState.
func (job *Job) WaitOnDone(ctx context.Context, timeout time.Duration) error {
	return job.WaitFor(ctx, static.JOB_STATE_DONE, []string{static.JOB_STATE_FAILED, static.JOB_STATE_TERMINATED}, timeout, job.GetState)
}
