package project

import (
	"context"
	"encoding/json"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var hooks = []string{
	static.METHOD_DESCRIBE,
	static.METHOD_RENAME,
	static.METHOD_SET_PROPERTIES,
	static.METHOD_ADD_TAGS,
	static.METHOD_REMOVE_TAGS,
}

// Router sends renames to /<project>/update; projects have no rename endpoint.
type Router struct {
	*common.Endpoint
}

// Project is a handle on a project. Its project ID is its own ID.
type Project struct {
	*objects.Object
	invoker iinvoker.Invoker
}

type Entry struct {
	ID string `json:"id"`
}

type Folder struct {
	Objects []Entry  `json:"objects"`
	Folders []string `json:"folders"`
}

type folderInput struct {
	Folder  string `json:"folder"`
	Parents bool   `json:"parents,omitempty"`
}

func NewRouter(invoker iinvoker.Invoker) *Router {
	return &Router{Endpoint: common.NewEndpoint(invoker, static.CLASS_PROJECT, hooks...)}
}

func (router *Router) Rename(ctx context.Context, id string, input []byte) error {
	_, err := router.Invoker.Invoke(ctx, id, static.METHOD_UPDATE, input)
	return err
}

func New(invoker iinvoker.Invoker, id string, options ...objects.Option) *Project {
	return &Project{
		Object:  objects.New(NewRouter(invoker), common.NewContainer(invoker), id, id, options...),
		invoker: invoker,
	}
}

func Create(ctx context.Context, invoker iinvoker.Invoker, name string, options ...objects.Option) (*Project, error) {
	if name == "" {
		return nil, errors.Wrap(apierrors.ErrInvalidInput, "a project needs a name")
	}

	input, err := jsonAPI.Marshal(map[string]string{"name": name})

	if err != nil {
		return nil, err
	}

	id, err := common.Create(ctx, invoker, static.CLASS_PROJECT, input)

	if err != nil {
		return nil, err
	}

	return New(invoker, id, options...), nil
}

// SetIdentifiers keeps the project ID equal to the object ID.
func (project *Project) SetIdentifiers(id string) {
	project.Object.SetIdentifiers(id, id)
}

func (project *Project) NewFolder(ctx context.Context, folder string, parents bool) error {
	_, err := project.folderCall(ctx, static.METHOD_NEW_FOLDER, folderInput{Folder: folder, Parents: parents})
	return err
}

func (project *Project) ListFolder(ctx context.Context, folder string) (*Folder, error) {
	if folder == "" {
		folder = static.ROOTPROJECT
	}

	response, err := project.folderCall(ctx, static.METHOD_LIST_FOLDER, folderInput{Folder: folder})

	if err != nil {
		return nil, err
	}

	listing := &Folder{}

	if err = jsonAPI.Unmarshal(response, listing); err != nil {
		return nil, errors.Wrapf(err, "malformed listing of %s", folder)
	}

	return listing, nil
}

func (project *Project) folderCall(ctx context.Context, method string, payload folderInput) (json.RawMessage, error) {
	if project.ID() == "" {
		return nil, apierrors.ErrInvalidState
	}

	input, err := jsonAPI.Marshal(payload)

	if err != nil {
		return nil, err
	}

	return project.invoker.Invoke(ctx, project.ID(), method, input)
}
