package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	mock_iinvoker "github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker/mock"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnsupportedHooks(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	app := New(invoker, "app-bwa", "project-1")

	assert.True(t, errors.Is(app.Rename(ctx, "other"), apierrors.ErrUnsupported))
	assert.True(t, errors.Is(app.Hide(ctx), apierrors.ErrUnsupported))
	assert.True(t, errors.Is(app.SetDetails(ctx, map[string]any{}), apierrors.ErrUnsupported))

	_, err := app.ListProjects(ctx)
	assert.True(t, errors.Is(err, apierrors.ErrUnsupported))
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	invoker.EXPECT().Invoke(ctx, "app-bwa", "addTags", []byte(`{"project":"project-1","tags":["aligner"]}`)).Return(json.RawMessage(`{}`), nil)

	assert.NoError(t, New(invoker, "app-bwa", "project-1").AddTags(ctx, []string{"aligner"}))
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	invoker.EXPECT().
		Invoke(ctx, "app-bwa", "run", []byte(`{"input":{},"project":"project-2"}`)).
		Return(json.RawMessage(`{"id":"job-2"}`), nil)

	job, err := New(invoker, "app-bwa", "project-1").Run(ctx, common.RunOptions{Project: "project-2"})

	require.NoError(t, err)
	assert.Equal(t, "job-2", job.ID())
	assert.Equal(t, "project-2", job.GetProjectID())
}
