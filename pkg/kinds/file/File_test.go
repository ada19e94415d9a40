package file

import (
	"context"
	"encoding/json"
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

func noSleep(ctx context.Context, d time.Duration) error {
	return nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	var request map[string]any

	invoker.EXPECT().Invoke(ctx, "file", "new", gomock.Any()).DoAndReturn(func(ctx context.Context, resource string, method string, payload []byte) (json.RawMessage, error) {
		require.NoError(t, json.Unmarshal(payload, &request))
		return json.RawMessage(`{"id":"file-1"}`), nil
	})

	file, err := Create(ctx, invoker, "project-1", CreateOptions{
		CreateOptions: common.CreateOptions{Name: "reads.fastq", Folder: "/raw", Parents: true},
		Media:         "text/plain",
	})

	require.NoError(t, err)
	assert.Equal(t, "file-1", file.ID())
	assert.Equal(t, "text/plain", request["media"])
	assert.Equal(t, "/raw", request["folder"])
	assert.Equal(t, true, request["parents"])
}

func TestCloseBlocking(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	gomock.InOrder(
		invoker.EXPECT().Invoke(ctx, "file-1", "describe", gomock.Any()).Return(json.RawMessage(`{"id":"file-1","state":"open"}`), nil),
		invoker.EXPECT().Invoke(ctx, "file-1", "close", []byte(`{}`)).Return(json.RawMessage(`{}`), nil),
		invoker.EXPECT().Invoke(ctx, "file-1", "describe", gomock.Any()).Return(json.RawMessage(`{"id":"file-1","state":"closing"}`), nil),
		invoker.EXPECT().Invoke(ctx, "file-1", "describe", gomock.Any()).Return(json.RawMessage(`{"id":"file-1","state":"closed"}`), nil),
	)

	file := New(invoker, "file-1", "project-1", objects.WithSleep(noSleep))

	assert.NoError(t, file.Close(ctx, true))
}

func TestCloseBlockingUsesWaitTimeout(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	gomock.InOrder(
		invoker.EXPECT().Invoke(ctx, "file-1", "describe", gomock.Any()).Return(json.RawMessage(`{"id":"file-1","state":"open"}`), nil),
		invoker.EXPECT().Invoke(ctx, "file-1", "close", []byte(`{}`)).Return(json.RawMessage(`{}`), nil),
		invoker.EXPECT().Invoke(ctx, "file-1", "describe", gomock.Any()).Return(json.RawMessage(`{"id":"file-1","state":"closing"}`), nil),
	)

	file := New(invoker, "file-1", "project-1", objects.WithSleep(noSleep), objects.WithWaitTimeout(0))

	assert.ErrorIs(t, file.Close(ctx, true), apierrors.ErrTimeout)
}

func TestWaitOnClose(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	invoker.EXPECT().Invoke(ctx, "file-1", "describe", gomock.Any()).Return(json.RawMessage(`{"id":"file-1","state":"closing"}`), nil).Times(1)

	file := New(invoker, "file-1", "project-1", objects.WithSleep(noSleep))

	assert.Error(t, file.WaitOnClose(ctx, 0))
}
