package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/configuration"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iresponse"
	"github.com/dxtoolkit/dxgo/pkg/logger"
	"github.com/dxtoolkit/dxgo/pkg/metrics"
	"github.com/dxtoolkit/dxgo/pkg/static"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func New(config *configuration.Configuration, client *http.Client) *Invoker {
	if client == nil {
		client = &http.Client{}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)

	if config.RateLimit != nil && config.RateLimit.RequestsPerSecond > 0 {
		burst := config.RateLimit.Burst

		if burst < 1 {
			burst = 1
		}

		limiter = rate.NewLimiter(rate.Limit(config.RateLimit.RequestsPerSecond), burst)
	}

	retry := configuration.NewRetry()

	if config.Retry != nil {
		retry = config.Retry
	}

	timeout := static.REQUEST_TIMEOUT

	if config.Timeouts != nil {
		timeout = config.Timeouts.Request
	}

	return &Invoker{
		Client:        client,
		URL:           strings.TrimSuffix(config.URL(), "/"),
		Authorization: config.Authorization(),
		Timeout:       timeout,
		Retry:         *retry,
		Limiter:       limiter,
		Logger:        logger.Log,
	}
}

// Invoke posts payload to /<resource>/<method>. Connection failures, 5xx and 429 responses
// are retried with exponential backoff; every other failure is returned on first sight.
func (invoker *Invoker) Invoke(ctx context.Context, resource string, method string, payload []byte) (json.RawMessage, error) {
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	URL := fmt.Sprintf("%s/%s/%s", invoker.URL, resource, method)
	begin := time.Now()

	metrics.ApiRequests.Increment(method)

	defer func() {
		metrics.ApiLatency.Observe(time.Since(begin).Seconds(), method)
	}()

	var response json.RawMessage
	attempt := 0

	operation := func() error {
		attempt += 1

		if attempt > 1 {
			metrics.ApiRetries.Increment(method)
		}

		if err := invoker.Limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		data, err := invoker.send(ctx, URL, payload)

		if err != nil {
			err.Resource, err.Method = resource, method

			invoker.log().Debug("api request failed",
				zap.String("resource", resource),
				zap.String("method", method),
				zap.Int("status", err.Status),
				zap.Int("attempt", attempt),
			)

			if ctx.Err() != nil || !err.Retryable() {
				return backoff.Permanent(err)
			}

			invoker.log().Warn("retrying api request", zap.String("URL", URL), zap.Error(err))
			return err
		}

		invoker.log().Debug("api request", zap.String("resource", resource), zap.String("method", method), zap.Int("attempt", attempt))

		response = data
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = invoker.Retry.InitialInterval
	expBackoff.MaxInterval = invoker.Retry.MaxInterval
	expBackoff.MaxElapsedTime = 0

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(invoker.Retry.MaxRetries)), ctx))

	if err != nil {
		metrics.ApiErrors.Increment(method, fmt.Sprintf("%d", apierrors.HTTPStatus(err)))
		return nil, err
	}

	return response, nil
}

func (invoker *Invoker) send(ctx context.Context, URL string, payload []byte) (json.RawMessage, *apierrors.RemoteError) {
	if invoker.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, invoker.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, URL, bytes.NewReader(payload))

	if err != nil {
		return nil, &apierrors.RemoteError{Message: "failed to craft request", Err: err}
	}

	req.Header.Set("Content-Type", static.CONTENT_TYPE_JSON)
	req.Header.Set("User-Agent", static.USER_AGENT)

	if invoker.Authorization != "" {
		req.Header.Set("Authorization", invoker.Authorization)
	}

	resp, err := invoker.Client.Do(req)

	if err != nil {
		return nil, &apierrors.RemoteError{Message: "failed to connect to the api server", Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, &apierrors.RemoteError{Message: "invalid response from the api server", Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope iresponse.Response

		if jsonAPI.Unmarshal(body, &envelope) == nil && envelope.Error != nil {
			envelope.Error.Status = resp.StatusCode
			return nil, envelope.Error
		}

		return nil, &apierrors.RemoteError{
			Status:  resp.StatusCode,
			Type:    http.StatusText(resp.StatusCode),
			Message: strings.TrimSpace(string(body)),
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage("{}"), nil
	}

	return body, nil
}

func (invoker *Invoker) log() *zap.Logger {
	if invoker.Logger == nil {
		return logger.Log
	}

	return invoker.Logger
}
