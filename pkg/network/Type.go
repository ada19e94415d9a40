package network

import (
	"net/http"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/configuration"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Invoker sends API calls over HTTP(S) to a single API server.
type Invoker struct {
	Client        *http.Client
	URL           string
	Authorization string
	Timeout       time.Duration
	Retry         configuration.Retry
	Limiter       *rate.Limiter
	Logger        *zap.Logger
}
