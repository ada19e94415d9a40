package applet

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	mock_iinvoker "github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker/mock"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	var request map[string]any

	invoker.EXPECT().Invoke(ctx, "applet", "new", gomock.Any()).DoAndReturn(func(ctx context.Context, resource string, method string, payload []byte) (json.RawMessage, error) {
		require.NoError(t, json.Unmarshal(payload, &request))
		return json.RawMessage(`{"id":"applet-1"}`), nil
	})

	applet, err := Create(ctx, invoker, "project-1", CreateOptions{
		DXAPI:   "1.0.0",
		RunSpec: map[string]any{"interpreter": "bash", "code": "echo"},
	})

	require.NoError(t, err)
	assert.Equal(t, "applet-1", applet.ID())
	assert.Equal(t, "1.0.0", request["dxapi"])
	assert.Equal(t, map[string]any{"interpreter": "bash", "code": "echo"}, request["runSpec"])
	assert.NotContains(t, request, "inputSpec")

	_, err = Create(ctx, invoker, "project-1", CreateOptions{})
	assert.True(t, errors.Is(err, apierrors.ErrInvalidInput))
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	invoker.EXPECT().
		Invoke(ctx, "applet-1", "run", []byte(`{"input":{"reads":"file-1"},"project":"project-1","name":"align"}`)).
		Return(json.RawMessage(`{"id":"job-1"}`), nil)

	applet := New(invoker, "applet-1", "project-1")
	job, err := applet.Run(ctx, common.RunOptions{Input: map[string]string{"reads": "file-1"}, Name: "align"})

	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID())
	assert.Equal(t, "project-1", job.GetProjectID())

	_, err = New(invoker, "", "project-1").Run(ctx, common.RunOptions{})
	assert.True(t, errors.Is(err, apierrors.ErrInvalidState))
}

func TestRunKeepsWaitSettings(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	slept := 0
	sleep := func(ctx context.Context, d time.Duration) error {
		slept++
		return nil
	}

	gomock.InOrder(
		invoker.EXPECT().Invoke(ctx, "applet-1", "run", gomock.Any()).Return(json.RawMessage(`{"id":"job-1"}`), nil),
		invoker.EXPECT().Invoke(ctx, "job-1", "describe", gomock.Any()).Return(json.RawMessage(`{"id":"job-1","state":"running"}`), nil),
		invoker.EXPECT().Invoke(ctx, "job-1", "describe", gomock.Any()).Return(json.RawMessage(`{"id":"job-1","state":"done"}`), nil),
	)

	applet := New(invoker, "applet-1", "project-1", objects.WithSleep(sleep), objects.WithWaitTimeout(time.Hour))
	started, err := applet.Run(ctx, common.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, time.Hour, started.WaitTimeout())
	require.NoError(t, started.WaitOnDone(ctx, started.WaitTimeout()))
	assert.Equal(t, 1, slept)
}
