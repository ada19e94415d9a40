package objects

import (
	"bytes"
	"context"
	json2 "encoding/json"
	"sort"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/configuration"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iobjects"
	"github.com/dxtoolkit/dxgo/pkg/link"
	jsonpatch "github.com/evanphx/json-patch"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/wI2L/jsondiff"
	"k8s.io/utils/clock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// New builds a handle routed through router. The handle reads workspace as its project
// unless WithProject says otherwise; an empty objectID leaves it unattached.
func New(router iobjects.Router, container iobjects.Container, objectID string, workspace string, options ...Option) *Object {
	obj := &Object{
		ObjectID:  objectID,
		ProjectID: workspace,
		router:    router,
		container: container,
		workspace: workspace,
		clock:     clock.RealClock{},
		sleep:     Sleep,
		polling:   *configuration.NewPolling(),
		timeout:   Forever,
	}

	for _, option := range options {
		option(obj)
	}

	return obj
}

func WithProject(project string) Option {
	return func(obj *Object) {
		if project != "" {
			obj.ProjectID = project
		}
	}
}

func WithClock(c clock.PassiveClock) Option {
	return func(obj *Object) {
		obj.clock = c
	}
}

func WithSleep(sleep SleepFunc) Option {
	return func(obj *Object) {
		obj.sleep = sleep
	}
}

func WithPolling(polling *configuration.Polling) Option {
	return func(obj *Object) {
		if polling != nil {
			obj.polling = *polling
		}
	}
}

// WithWaitTimeout sets the deadline used when a blocking call is not given one.
func WithWaitTimeout(timeout time.Duration) Option {
	return func(obj *Object) {
		obj.timeout = timeout
	}
}

// Options carries the handle's clock, sleep, polling and wait timeout over to handles derived from it.
func (obj *Object) Options() []Option {
	polling := obj.polling

	return []Option{
		WithClock(obj.clock),
		WithSleep(obj.sleep),
		WithPolling(&polling),
		WithWaitTimeout(obj.timeout),
	}
}

func (obj *Object) WaitTimeout() time.Duration {
	return obj.timeout
}

// SetIdentifiers points the handle at another object. An empty project falls back to the workspace.
func (obj *Object) SetIdentifiers(objectID string, projectID string) {
	if projectID == "" {
		projectID = obj.workspace
	}

	obj.ObjectID = objectID
	obj.ProjectID = projectID
}

func (obj *Object) GetObjectID() string {
	return obj.ObjectID
}

func (obj *Object) GetProjectID() string {
	return obj.ProjectID
}

// ID is the identifier to use wherever an object ID string is expected.
func (obj *Object) ID() string {
	return obj.ObjectID
}

func (obj *Object) Class() string {
	return obj.router.Class()
}

func (obj *Object) Router() iobjects.Router {
	return obj.router
}

func (obj *Object) Link() link.Link {
	return link.New(obj.ObjectID, obj.ProjectID)
}

func (obj *Object) Describe(ctx context.Context, options DescribeOptions) (*Description, error) {
	if err := obj.attached(); err != nil {
		return nil, err
	}

	input, err := json.Marshal(describeInput{
		Project:    obj.ProjectID,
		Properties: options.Properties,
		Details:    options.Details,
	})

	if err != nil {
		return nil, err
	}

	response, err := obj.router.Describe(ctx, obj.ObjectID, input)

	if err != nil {
		return nil, err
	}

	description := &Description{}

	if err = json.Unmarshal(response, description); err != nil {
		return nil, errors.Wrapf(err, "malformed description of %s", obj.ObjectID)
	}

	description.Raw = response

	return description, nil
}

func (obj *Object) AddTypes(ctx context.Context, types []string) error {
	return obj.call(ctx, obj.router.AddTypes, typesInput{Types: nonNil(types)})
}

func (obj *Object) RemoveTypes(ctx context.Context, types []string) error {
	return obj.call(ctx, obj.router.RemoveTypes, typesInput{Types: nonNil(types)})
}

func (obj *Object) GetDetails(ctx context.Context) (json2.RawMessage, error) {
	if err := obj.attached(); err != nil {
		return nil, err
	}

	return obj.router.GetDetails(ctx, obj.ObjectID, []byte("{}"))
}

// SetDetails replaces the details with details, which must encode to a JSON object or array.
func (obj *Object) SetDetails(ctx context.Context, details any) error {
	if err := obj.attached(); err != nil {
		return err
	}

	input, err := encodeDetails(details)

	if err != nil {
		return err
	}

	return obj.router.SetDetails(ctx, obj.ObjectID, input)
}

// PatchDetails applies patch to the current details and stores the result. A JSON array is
// read as an RFC 6902 patch, a JSON object as an RFC 7396 merge patch.
func (obj *Object) PatchDetails(ctx context.Context, patch []byte) (json2.RawMessage, error) {
	current, err := obj.GetDetails(ctx)

	if err != nil {
		return nil, err
	}

	patched, err := applyPatch(current, patch)

	if err != nil {
		return nil, err
	}

	if err = obj.SetDetails(ctx, json2.RawMessage(patched)); err != nil {
		return nil, err
	}

	return patched, nil
}

// DiffDetails compares the current details with proposed without changing anything.
func (obj *Object) DiffDetails(ctx context.Context, proposed any) (jsondiff.Patch, error) {
	current, err := obj.GetDetails(ctx)

	if err != nil {
		return nil, err
	}

	target, err := encodeDetails(proposed)

	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(current)) == 0 {
		current = []byte("{}")
	}

	return jsondiff.CompareJSON(current, target)
}

func (obj *Object) Hide(ctx context.Context) error {
	return obj.call(ctx, obj.router.SetVisibility, visibilityInput{Project: obj.ProjectID, Hidden: true})
}

func (obj *Object) Unhide(ctx context.Context) error {
	return obj.call(ctx, obj.router.SetVisibility, visibilityInput{Project: obj.ProjectID, Hidden: false})
}

func (obj *Object) Rename(ctx context.Context, name string) error {
	return obj.call(ctx, obj.router.Rename, renameInput{Project: obj.ProjectID, Name: name})
}

// SetProperties merges properties into the object's properties in this project.
// A nil value removes the property.
func (obj *Object) SetProperties(ctx context.Context, properties map[string]*string) error {
	if properties == nil {
		properties = map[string]*string{}
	}

	return obj.call(ctx, obj.router.SetProperties, propertiesInput{Project: obj.ProjectID, Properties: properties})
}

func (obj *Object) GetProperties(ctx context.Context) (map[string]string, error) {
	description, err := obj.Describe(ctx, DescribeOptions{Properties: true})

	if err != nil {
		return nil, err
	}

	if description.Properties == nil {
		return map[string]string{}, nil
	}

	return description.Properties, nil
}

func (obj *Object) AddTags(ctx context.Context, tags []string) error {
	return obj.call(ctx, obj.router.AddTags, tagsInput{Project: obj.ProjectID, Tags: nonNil(tags)})
}

func (obj *Object) RemoveTags(ctx context.Context, tags []string) error {
	return obj.call(ctx, obj.router.RemoveTags, tagsInput{Project: obj.ProjectID, Tags: nonNil(tags)})
}

// Close asks the service to finalize the object. Finalization is asynchronous; see WaitOnState.
func (obj *Object) Close(ctx context.Context) error {
	if err := obj.attached(); err != nil {
		return err
	}

	return obj.router.Close(ctx, obj.ObjectID, []byte("{}"))
}

// ListProjects returns the sorted IDs of the projects holding a copy of the object.
func (obj *Object) ListProjects(ctx context.Context) ([]string, error) {
	if err := obj.attached(); err != nil {
		return nil, err
	}

	response, err := obj.router.ListProjects(ctx, obj.ObjectID, []byte("{}"))

	if err != nil {
		return nil, err
	}

	return decodeProjects(response)
}

// Move moves the object to destination folder inside the handle's project.
func (obj *Object) Move(ctx context.Context, destination string) error {
	if err := obj.scoped(); err != nil {
		return err
	}

	input, err := json.Marshal(moveInput{Objects: []string{obj.ObjectID}, Destination: destination})

	if err != nil {
		return err
	}

	return obj.container.Move(ctx, obj.ProjectID, input)
}

// Remove deletes the handle's project copy of the object and detaches the handle.
func (obj *Object) Remove(ctx context.Context) error {
	if err := obj.scoped(); err != nil {
		return err
	}

	input, err := json.Marshal(removeInput{Objects: []string{obj.ObjectID}})

	if err != nil {
		return err
	}

	if err = obj.container.RemoveObjects(ctx, obj.ProjectID, input); err != nil {
		return err
	}

	obj.ObjectID = ""
	obj.ProjectID = ""

	return nil
}

// Clone copies a reference to the object into destination folder of project and returns a
// handle on that copy. The source copy is untouched.
func (obj *Object) Clone(ctx context.Context, project string, destination string) (*Object, error) {
	if err := obj.scoped(); err != nil {
		return nil, err
	}

	if project == "" {
		return nil, errors.Wrap(apierrors.ErrInvalidInput, "clone needs a destination project")
	}

	input, err := json.Marshal(cloneInput{
		Objects:     []string{obj.ObjectID},
		Project:     project,
		Destination: destination,
	})

	if err != nil {
		return nil, err
	}

	if _, err = obj.container.Clone(ctx, obj.ProjectID, input); err != nil {
		return nil, err
	}

	clone := *obj
	clone.ProjectID = project

	return &clone, nil
}

func (obj *Object) attached() error {
	if obj.ObjectID == "" {
		return apierrors.ErrInvalidState
	}

	return nil
}

func (obj *Object) scoped() error {
	if err := obj.attached(); err != nil {
		return err
	}

	if obj.ProjectID == "" {
		return errors.Wrapf(apierrors.ErrInvalidState, "%s has no project", obj.ObjectID)
	}

	return nil
}

func (obj *Object) call(ctx context.Context, hook func(context.Context, string, []byte) error, payload any) error {
	if err := obj.attached(); err != nil {
		return err
	}

	input, err := json.Marshal(payload)

	if err != nil {
		return err
	}

	return hook(ctx, obj.ObjectID, input)
}

func encodeDetails(details any) ([]byte, error) {
	var encoded []byte
	var err error

	switch v := details.(type) {
	case json2.RawMessage:
		encoded = v
	case []byte:
		encoded = v
	default:
		encoded, err = json.Marshal(details)

		if err != nil {
			return nil, err
		}
	}

	encoded = bytes.TrimSpace(encoded)

	if len(encoded) == 0 || (encoded[0] != '{' && encoded[0] != '[') || !json.Valid(encoded) {
		return nil, errors.Wrap(apierrors.ErrInvalidInput, "details must be a JSON object or array")
	}

	return encoded, nil
}

func applyPatch(document []byte, patch []byte) ([]byte, error) {
	patch = bytes.TrimSpace(patch)

	if len(bytes.TrimSpace(document)) == 0 {
		document = []byte("{}")
	}

	if len(patch) > 0 && patch[0] == '[' {
		operations, err := jsonpatch.DecodePatch(patch)

		if err != nil {
			return nil, errors.Wrap(apierrors.ErrInvalidInput, err.Error())
		}

		patched, err := operations.Apply(document)

		if err != nil {
			return nil, errors.Wrap(apierrors.ErrInvalidInput, err.Error())
		}

		return patched, nil
	}

	patched, err := jsonpatch.MergePatch(document, patch)

	if err != nil {
		return nil, errors.Wrap(apierrors.ErrInvalidInput, err.Error())
	}

	return patched, nil
}

func decodeProjects(response json2.RawMessage) ([]string, error) {
	projects := make([]string, 0)

	var access map[string]any

	if err := json.Unmarshal(response, &access); err == nil {
		for project := range access {
			projects = append(projects, project)
		}

		sort.Strings(projects)
		return projects, nil
	}

	if err := json.Unmarshal(response, &projects); err != nil {
		return nil, errors.Wrap(err, "malformed project list")
	}

	sort.Strings(projects)

	return projects, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
