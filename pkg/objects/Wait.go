package objects

import (
	"context"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/metrics"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/pkg/errors"
)

// Forever disables the wait deadline.
const Forever time.Duration = -1

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WaitOnState describes the object until it reports target (closed when empty) or timeout
// elapses. A failed describe ends the wait with that error.
func (obj *Object) WaitOnState(ctx context.Context, target string, timeout time.Duration) error {
	if err := obj.attached(); err != nil {
		return err
	}

	if target == "" {
		target = static.STATE_CLOSED
	}

	return obj.WaitFor(ctx, target, nil, timeout, func(ctx context.Context) (string, error) {
		description, err := obj.Describe(ctx, DescribeOptions{})

		if err != nil {
			return "", err
		}

		return description.State, nil
	})
}

// WaitFor polls until poll reports target. Reaching any of failures ends the wait with
// ErrUnexpectedState; a negative timeout waits forever, zero polls exactly once.
func (obj *Object) WaitFor(ctx context.Context, target string, failures []string, timeout time.Duration, poll PollFunc) error {
	deadline := obj.clock.Now().Add(timeout)

	interval := &backoff.ExponentialBackOff{
		InitialInterval:     obj.polling.Initial,
		RandomizationFactor: 0,
		Multiplier:          obj.polling.Multiplier,
		MaxInterval:         obj.polling.Max,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               obj.clock,
	}

	interval.Reset()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		metrics.WaitPolls.Increment(target)

		state, err := poll(ctx)

		if err != nil {
			return err
		}

		if state == target {
			return nil
		}

		if slices.Contains(failures, state) {
			return errors.Wrapf(apierrors.ErrUnexpectedState, "%s is %s, wanted %s", obj.ObjectID, state, target)
		}

		wait := interval.NextBackOff()

		if timeout >= 0 {
			remaining := deadline.Sub(obj.clock.Now())

			if remaining <= 0 {
				return errors.Wrapf(apierrors.ErrTimeout, "%s is %s, wanted %s", obj.ObjectID, state, target)
			}

			wait = min(wait, remaining)
		}

		if err = obj.sleep(ctx, wait); err != nil {
			return err
		}
	}
}
