package project

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	mock_iinvoker "github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRenameUsesUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	invoker.EXPECT().Invoke(ctx, "project-1", "update", []byte(`{"project":"project-1","name":"renamed"}`)).Return(json.RawMessage(`{}`), nil)

	project := New(invoker, "project-1")

	assert.Equal(t, "project-1", project.GetProjectID())
	assert.NoError(t, project.Rename(ctx, "renamed"))
	assert.True(t, errors.Is(project.AddTypes(ctx, []string{"x"}), apierrors.ErrUnsupported))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	invoker.EXPECT().Invoke(ctx, "project", "new", []byte(`{"name":"analysis"}`)).Return(json.RawMessage(`{"id":"project-9"}`), nil)

	project, err := Create(ctx, invoker, "analysis")

	require.NoError(t, err)
	assert.Equal(t, "project-9", project.ID())
	assert.Equal(t, "project-9", project.GetProjectID())

	_, err = Create(ctx, invoker, "")
	assert.True(t, errors.Is(err, apierrors.ErrInvalidInput))
}

func TestFolders(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	gomock.InOrder(
		invoker.EXPECT().Invoke(ctx, "project-1", "newFolder", []byte(`{"folder":"/a/b","parents":true}`)).Return(json.RawMessage(`{}`), nil),
		invoker.EXPECT().Invoke(ctx, "project-1", "listFolder", []byte(`{"folder":"/"}`)).Return(json.RawMessage(`{"objects":[{"id":"record-1"}],"folders":["/a"]}`), nil),
	)

	project := New(invoker, "project-1")

	require.NoError(t, project.NewFolder(ctx, "/a/b", true))

	listing, err := project.ListFolder(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, []Entry{{ID: "record-1"}}, listing.Objects)
	assert.Equal(t, []string{"/a"}, listing.Folders)
}

func TestSetIdentifiers(t *testing.T) {
	project := New(nil, "project-1")
	project.SetIdentifiers("project-2")

	assert.Equal(t, "project-2", project.GetObjectID())
	assert.Equal(t, "project-2", project.GetProjectID())
}
