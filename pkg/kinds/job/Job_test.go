package job

import (
	"context"
	json2 "encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	mock_iinvoker "github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker/mock"
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

	invoker.EXPECT().Invoke(ctx, "job", "new", gomock.Any()).DoAndReturn(func(ctx context.Context, resource string, method string, payload []byte) (json2.RawMessage, error) {
		require.NoError(t, json.Unmarshal(payload, &request))
		return json2.RawMessage(`{"id":"job-1"}`), nil
	})

	job, err := Create(ctx, invoker, "project-1", CreateOptions{Function: "merge", Name: "merge shards"})

	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID())
	assert.Equal(t, "merge", request["function"])
	assert.Equal(t, map[string]any{}, request["input"])
	assert.NotContains(t, request, "systemRequirements")
	assert.NotEmpty(t, request["nonce"])
}

func TestTerminate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	invoker := mock_iinvoker.NewMockInvoker(ctrl)

	invoker.EXPECT().Invoke(ctx, "job-1", "terminate", []byte(`{}`)).Return(json2.RawMessage(`{}`), nil)

	assert.NoError(t, New(invoker, "job-1", "project-1").Terminate(ctx))
	assert.True(t, errors.Is(New(invoker, "", "project-1").Terminate(ctx), apierrors.ErrInvalidState))
}

func TestWaitOnDone(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		states []string
		wanted error
	}{
		{"Done", []string{"idle", "runnable", "running", "done"}, nil},
		{"Failed", []string{"running", "failed"}, apierrors.ErrUnexpectedState},
		{"Terminated", []string{"terminated"}, apierrors.ErrUnexpectedState},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			invoker := mock_iinvoker.NewMockInvoker(ctrl)

			calls := make([]any, 0, len(tc.states))

			for _, state := range tc.states {
				calls = append(calls, invoker.EXPECT().
					Invoke(ctx, "job-1", "describe", gomock.Any()).
					Return(json2.RawMessage(`{"id":"job-1","class":"job","state":"`+state+`"}`), nil))
			}

			gomock.InOrder(calls...)

			err := New(invoker, "job-1", "project-1", objects.WithSleep(noSleep)).WaitOnDone(ctx, objects.Forever)

			assert.True(t, errors.Is(err, tc.wanted))
		})
	}
}

func TestUnsupportedHooks(t *testing.T) {
	ctx := context.Background()
	job := New(nil, "job-1", "project-1")

	assert.True(t, errors.Is(job.SetDetails(ctx, map[string]any{}), apierrors.ErrUnsupported))
	assert.True(t, errors.Is(job.Close(ctx), apierrors.ErrUnsupported))
}
