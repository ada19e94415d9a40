package configuration

import (
	"fmt"
	"strings"

	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func NewConfig() *Configuration {
	return &Configuration{
		APIServer: APIServer{
			Protocol: static.DEFAULT_APISERVER_PROTOCOL,
			Host:     static.DEFAULT_APISERVER_HOST,
			Port:     static.DEFAULT_APISERVER_PORT,
		},
		Security: Security{
			AuthTokenType: static.DEFAULT_AUTH_TOKEN_TYPE,
		},
		Timeouts: NewTimeouts(),
		Retry:    NewRetry(),
		Polling:  NewPolling(),
		RateLimit: &RateLimit{
			RequestsPerSecond: 0,
			Burst:             1,
		},
	}
}

func NewTimeouts() *Timeouts {
	return &Timeouts{
		Request: static.REQUEST_TIMEOUT,
		Wait:    -1,
	}
}

func NewRetry() *Retry {
	return &Retry{
		MaxRetries:      static.RETRY_MAX,
		InitialInterval: static.RETRY_INITIAL_INTERVAL,
		MaxInterval:     static.RETRY_MAX_INTERVAL,
	}
}

func NewPolling() *Polling {
	return &Polling{
		Initial:    static.POLL_INITIAL_INTERVAL,
		Multiplier: static.POLL_MULTIPLIER,
		Max:        static.POLL_MAX_INTERVAL,
	}
}

// Workspace is the project used by handles that are not given one explicitly.
// Inside a job it is the job's temporary workspace, otherwise the project context.
func (c *Configuration) Workspace() string {
	if c.JobID != "" && c.WorkspaceID != "" {
		return c.WorkspaceID
	}

	return c.ProjectContextID
}

func (c *Configuration) URL() string {
	return fmt.Sprintf("%s://%s:%d", c.APIServer.Protocol, c.APIServer.Host, c.APIServer.Port)
}

func (c *Configuration) Authorization() string {
	if c.Security.AuthToken == "" {
		return ""
	}

	tokenType := c.Security.AuthTokenType

	if tokenType == "" || strings.EqualFold(tokenType, "bearer") {
		tokenType = static.DEFAULT_AUTH_TOKEN_TYPE
	}

	return fmt.Sprintf("%s %s", tokenType, c.Security.AuthToken)
}

func (c *Configuration) Validate() error {
	return validate.Struct(c)
}
