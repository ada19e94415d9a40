package common

import (
	"context"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/pkg/errors"
)

// CloseAndWait closes obj unless it is already closing or closed. With block set it
// then waits until obj is closed or timeout elapses.
func CloseAndWait(ctx context.Context, obj *objects.Object, block bool, timeout time.Duration) error {
	description, err := obj.Describe(ctx, objects.DescribeOptions{})

	if err != nil {
		return err
	}

	switch description.State {
	case static.STATE_OPEN:
		if err = obj.Close(ctx); err != nil {
			return err
		}
	case static.STATE_CLOSING, static.STATE_CLOSED:
	default:
		return errors.Wrapf(apierrors.ErrUnexpectedState, "%s cannot be closed from state %q", obj.ID(), description.State)
	}

	if !block {
		return nil
	}

	return obj.WaitOnState(ctx, static.STATE_CLOSED, timeout)
}
