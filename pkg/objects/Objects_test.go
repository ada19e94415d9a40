package objects

import (
	"context"
	json2 "encoding/json"
	"errors"
	"testing"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	mock_iobjects "github.com/dxtoolkit/dxgo/pkg/contracts/iobjects/mock"
	"github.com/go-playground/assert/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestObject(t *testing.T, objectID string, workspace string, options ...Option) (*Object, *mock_iobjects.MockRouter, *mock_iobjects.MockContainer) {
	ctrl := gomock.NewController(t)

	router := mock_iobjects.NewMockRouter(ctrl)
	container := mock_iobjects.NewMockContainer(ctrl)

	return New(router, container, objectID, workspace, options...), router, container
}

func TestIdentifiers(t *testing.T) {
	obj, _, _ := newTestObject(t, "", "project-workspace")

	assert.Equal(t, obj.GetObjectID(), "")
	assert.Equal(t, obj.GetProjectID(), "project-workspace")

	obj.SetIdentifiers("record-1", "project-2")

	assert.Equal(t, obj.GetObjectID(), "record-1")
	assert.Equal(t, obj.GetProjectID(), "project-2")
	assert.Equal(t, obj.ID(), "record-1")

	obj.SetIdentifiers("record-3", "")

	assert.Equal(t, obj.GetObjectID(), "record-3")
	assert.Equal(t, obj.GetProjectID(), "project-workspace")

	explicit, _, _ := newTestObject(t, "record-4", "project-workspace", WithProject("project-5"))

	assert.Equal(t, explicit.GetProjectID(), "project-5")
	assert.Equal(t, explicit.Link().Project, "project-5")
	assert.Equal(t, explicit.Link().ID, "record-4")
}

func TestUnattached(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		operation func(obj *Object) error
	}{
		{"Describe", func(obj *Object) error { _, err := obj.Describe(ctx, DescribeOptions{}); return err }},
		{"AddTypes", func(obj *Object) error { return obj.AddTypes(ctx, []string{"a"}) }},
		{"RemoveTypes", func(obj *Object) error { return obj.RemoveTypes(ctx, []string{"a"}) }},
		{"GetDetails", func(obj *Object) error { _, err := obj.GetDetails(ctx); return err }},
		{"SetDetails", func(obj *Object) error { return obj.SetDetails(ctx, map[string]any{}) }},
		{"PatchDetails", func(obj *Object) error { _, err := obj.PatchDetails(ctx, []byte(`{}`)); return err }},
		{"Hide", func(obj *Object) error { return obj.Hide(ctx) }},
		{"Unhide", func(obj *Object) error { return obj.Unhide(ctx) }},
		{"Rename", func(obj *Object) error { return obj.Rename(ctx, "name") }},
		{"SetProperties", func(obj *Object) error { return obj.SetProperties(ctx, map[string]*string{}) }},
		{"GetProperties", func(obj *Object) error { _, err := obj.GetProperties(ctx); return err }},
		{"AddTags", func(obj *Object) error { return obj.AddTags(ctx, []string{"a"}) }},
		{"RemoveTags", func(obj *Object) error { return obj.RemoveTags(ctx, []string{"a"}) }},
		{"Close", func(obj *Object) error { return obj.Close(ctx) }},
		{"ListProjects", func(obj *Object) error { _, err := obj.ListProjects(ctx); return err }},
		{"Move", func(obj *Object) error { return obj.Move(ctx, "/folder") }},
		{"Remove", func(obj *Object) error { return obj.Remove(ctx) }},
		{"Clone", func(obj *Object) error { _, err := obj.Clone(ctx, "project-2", "/"); return err }},
		{"WaitOnState", func(obj *Object) error { return obj.WaitOnState(ctx, "closed", Forever) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Mocks carry no expectations, so any remote call fails the test.
			obj, _, _ := newTestObject(t, "", "project-workspace")

			err := tc.operation(obj)

			assert.Equal(t, errors.Is(err, apierrors.ErrInvalidState), true)
		})
	}
}

func TestContainerNeedsProject(t *testing.T) {
	obj, _, _ := newTestObject(t, "record-1", "")

	assert.Equal(t, errors.Is(obj.Move(context.Background(), "/"), apierrors.ErrInvalidState), true)
	assert.Equal(t, errors.Is(obj.Remove(context.Background()), apierrors.ErrInvalidState), true)
}

func TestPayloads(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		mockFunc  func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer)
		operation func(obj *Object) error
	}{
		{
			"AddTypes",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().AddTypes(ctx, "record-1", []byte(`{"types":["a","b"]}`)).Return(nil)
			},
			func(obj *Object) error { return obj.AddTypes(ctx, []string{"a", "b"}) },
		},
		{
			"RemoveTypes without types",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().RemoveTypes(ctx, "record-1", []byte(`{"types":[]}`)).Return(nil)
			},
			func(obj *Object) error { return obj.RemoveTypes(ctx, nil) },
		},
		{
			"SetDetails",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().SetDetails(ctx, "record-1", []byte(`{"key":"value"}`)).Return(nil)
			},
			func(obj *Object) error { return obj.SetDetails(ctx, map[string]string{"key": "value"}) },
		},
		{
			"SetDetails array",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().SetDetails(ctx, "record-1", []byte(`[1,2]`)).Return(nil)
			},
			func(obj *Object) error { return obj.SetDetails(ctx, json2.RawMessage(` [1,2] `)) },
		},
		{
			"Hide",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().SetVisibility(ctx, "record-1", []byte(`{"project":"project-1","hidden":true}`)).Return(nil)
			},
			func(obj *Object) error { return obj.Hide(ctx) },
		},
		{
			"Unhide",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().SetVisibility(ctx, "record-1", []byte(`{"project":"project-1","hidden":false}`)).Return(nil)
			},
			func(obj *Object) error { return obj.Unhide(ctx) },
		},
		{
			"Rename",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().Rename(ctx, "record-1", []byte(`{"project":"project-1","name":"foo"}`)).Return(nil)
			},
			func(obj *Object) error { return obj.Rename(ctx, "foo") },
		},
		{
			"SetProperties",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().SetProperties(ctx, "record-1", []byte(`{"project":"project-1","properties":{"a":"1","b":null}}`)).Return(nil)
			},
			func(obj *Object) error {
				value := "1"
				return obj.SetProperties(ctx, map[string]*string{"a": &value, "b": nil})
			},
		},
		{
			"AddTags",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().AddTags(ctx, "record-1", []byte(`{"project":"project-1","tags":["x"]}`)).Return(nil)
			},
			func(obj *Object) error { return obj.AddTags(ctx, []string{"x"}) },
		},
		{
			"RemoveTags",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().RemoveTags(ctx, "record-1", []byte(`{"project":"project-1","tags":["x"]}`)).Return(nil)
			},
			func(obj *Object) error { return obj.RemoveTags(ctx, []string{"x"}) },
		},
		{
			"Close",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				router.EXPECT().Close(ctx, "record-1", []byte(`{}`)).Return(nil)
			},
			func(obj *Object) error { return obj.Close(ctx) },
		},
		{
			"Move",
			func(router *mock_iobjects.MockRouter, container *mock_iobjects.MockContainer) {
				container.EXPECT().Move(ctx, "project-1", []byte(`{"objects":["record-1"],"destination":"/archive"}`)).Return(nil)
			},
			func(obj *Object) error { return obj.Move(ctx, "/archive") },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obj, router, container := newTestObject(t, "record-1", "project-1")
			tc.mockFunc(router, container)

			assert.Equal(t, tc.operation(obj), nil)
		})
	}
}

func TestRemoteErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	remote := &apierrors.RemoteError{Status: 422, Type: "InvalidState", Message: "object is closed"}

	obj, router, _ := newTestObject(t, "record-1", "project-1")
	router.EXPECT().AddTypes(ctx, "record-1", gomock.Any()).Return(remote)

	err := obj.AddTypes(ctx, []string{"a"})

	assert.Equal(t, err, error(remote))
}

func TestDescribe(t *testing.T) {
	ctx := context.Background()
	obj, router, _ := newTestObject(t, "record-1", "project-1")

	router.EXPECT().
		Describe(ctx, "record-1", []byte(`{"project":"project-1","properties":true,"details":true}`)).
		Return(json2.RawMessage(`{"id":"record-1","class":"record","project":"project-1","name":"r","state":"open","types":["t"],"tags":[],"created":1700000000000,"properties":{"k":"v"},"details":{"a":1},"sponsored":true}`), nil)

	description, err := obj.Describe(ctx, DescribeOptions{Properties: true, Details: true})

	require.NoError(t, err)
	assert.Equal(t, description.ID, "record-1")
	assert.Equal(t, description.Class, "record")
	assert.Equal(t, description.State, "open")
	assert.Equal(t, description.Types, []string{"t"})
	assert.Equal(t, description.Created, int64(1700000000000))
	assert.Equal(t, description.Properties, map[string]string{"k": "v"})
	assert.Equal(t, string(description.Details), `{"a":1}`)
	assert.Equal(t, json2.Valid(description.Raw), true)
}

func TestProperties(t *testing.T) {
	ctx := context.Background()
	obj, router, _ := newTestObject(t, "record-1", "project-1")

	stored := map[string]string{}

	router.EXPECT().SetProperties(ctx, "record-1", gomock.Any()).DoAndReturn(func(ctx context.Context, id string, input []byte) error {
		var request propertiesInput

		if err := json.Unmarshal(input, &request); err != nil {
			return err
		}

		for key, value := range request.Properties {
			if value == nil {
				delete(stored, key)
			} else {
				stored[key] = *value
			}
		}

		return nil
	})

	router.EXPECT().Describe(ctx, "record-1", gomock.Any()).DoAndReturn(func(ctx context.Context, id string, input []byte) (json2.RawMessage, error) {
		return json.Marshal(map[string]any{"id": id, "class": "record", "properties": stored})
	})

	value := "v"
	require.NoError(t, obj.SetProperties(ctx, map[string]*string{"k": &value}))

	properties, err := obj.GetProperties(ctx)

	require.NoError(t, err)
	assert.Equal(t, properties["k"], "v")
}

func TestListProjects(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		response string
		wanted   []string
	}{
		{"Access map", `{"project-b":"VIEW","project-a":"ADMINISTER"}`, []string{"project-a", "project-b"}},
		{"Array", `["project-c","project-a"]`, []string{"project-a", "project-c"}},
		{"Empty", `{}`, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obj, router, _ := newTestObject(t, "record-1", "project-1")
			router.EXPECT().ListProjects(ctx, "record-1", []byte(`{}`)).Return(json2.RawMessage(tc.response), nil)

			projects, err := obj.ListProjects(ctx)

			assert.Equal(t, err, nil)
			assert.Equal(t, projects, tc.wanted)
		})
	}
}

func TestSetDetailsRejectsScalars(t *testing.T) {
	obj, _, _ := newTestObject(t, "record-1", "project-1")

	for _, details := range []any{"text", 42, nil, json2.RawMessage(`{broken`)} {
		err := obj.SetDetails(context.Background(), details)
		assert.Equal(t, errors.Is(err, apierrors.ErrInvalidInput), true)
	}
}

func TestPatchDetails(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		current string
		patch   string
		wanted  string
	}{
		{"Merge patch", `{"a":1,"b":2}`, `{"b":null,"c":3}`, `{"a":1,"c":3}`},
		{"JSON patch", `{"a":[1]}`, `[{"op":"add","path":"/a/-","value":2}]`, `{"a":[1,2]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obj, router, _ := newTestObject(t, "record-1", "project-1")

			var stored []byte

			router.EXPECT().GetDetails(ctx, "record-1", gomock.Any()).Return(json2.RawMessage(tc.current), nil)
			router.EXPECT().SetDetails(ctx, "record-1", gomock.Any()).DoAndReturn(func(ctx context.Context, id string, input []byte) error {
				stored = input
				return nil
			})

			patched, err := obj.PatchDetails(ctx, []byte(tc.patch))

			require.NoError(t, err)
			require.JSONEq(t, tc.wanted, string(patched))
			require.JSONEq(t, tc.wanted, string(stored))
		})
	}
}

func TestDiffDetails(t *testing.T) {
	ctx := context.Background()
	obj, router, _ := newTestObject(t, "record-1", "project-1")

	router.EXPECT().GetDetails(ctx, "record-1", gomock.Any()).Return(json2.RawMessage(`{"a":1}`), nil)

	patch, err := obj.DiffDetails(ctx, map[string]int{"a": 2})

	require.NoError(t, err)
	assert.Equal(t, len(patch), 1)
	assert.Equal(t, patch[0].Path, "/a")
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	obj, _, container := newTestObject(t, "record-1", "project-1")

	container.EXPECT().RemoveObjects(ctx, "project-1", []byte(`{"objects":["record-1"]}`)).Return(nil).Times(1)

	require.NoError(t, obj.Remove(ctx))

	assert.Equal(t, obj.GetObjectID(), "")
	assert.Equal(t, obj.GetProjectID(), "")
	assert.Equal(t, errors.Is(obj.Remove(ctx), apierrors.ErrInvalidState), true)
}

func TestRemoveFailureKeepsIdentifiers(t *testing.T) {
	ctx := context.Background()
	obj, _, container := newTestObject(t, "record-1", "project-1")

	container.EXPECT().RemoveObjects(ctx, "project-1", gomock.Any()).Return(&apierrors.RemoteError{Status: 401})

	assert.NotEqual(t, obj.Remove(ctx), nil)
	assert.Equal(t, obj.GetObjectID(), "record-1")
	assert.Equal(t, obj.GetProjectID(), "project-1")
}

func TestClone(t *testing.T) {
	ctx := context.Background()
	obj, _, container := newTestObject(t, "record-1", "project-1")

	container.EXPECT().
		Clone(ctx, "project-1", []byte(`{"objects":["record-1"],"project":"project-2","destination":"/copies"}`)).
		Return(json2.RawMessage(`{"id":"project-1","project":"project-2","exists":[]}`), nil)

	clone, err := obj.Clone(ctx, "project-2", "/copies")

	require.NoError(t, err)
	assert.Equal(t, clone.GetObjectID(), "record-1")
	assert.Equal(t, clone.GetProjectID(), "project-2")
	assert.Equal(t, obj.GetProjectID(), "project-1")

	_, err = obj.Clone(ctx, "", "/")
	assert.Equal(t, errors.Is(err, apierrors.ErrInvalidInput), true)
}
