package configuration

import (
	"time"
)

type Configuration struct {
	APIServer        APIServer  `yaml:"apiserver" mapstructure:"apiserver"`
	Security         Security   `yaml:"security" mapstructure:"security"`
	ProjectContextID string     `yaml:"projectContextId" mapstructure:"projectContextId"`
	WorkspaceID      string     `yaml:"workspaceId" mapstructure:"workspaceId"`
	JobID            string     `yaml:"jobId" mapstructure:"jobId"`
	Timeouts         *Timeouts  `yaml:"timeouts" mapstructure:"timeouts" validate:"required"`
	Retry            *Retry     `yaml:"retry" mapstructure:"retry" validate:"required"`
	Polling          *Polling   `yaml:"polling" mapstructure:"polling" validate:"required"`
	RateLimit        *RateLimit `yaml:"rateLimit" mapstructure:"rateLimit"`
}

type APIServer struct {
	Protocol string `yaml:"protocol" mapstructure:"protocol" validate:"oneof=http https"`
	Host     string `yaml:"host" mapstructure:"host" validate:"required"`
	Port     int    `yaml:"port" mapstructure:"port" validate:"min=1,max=65535"`
}

type Security struct {
	AuthTokenType string `yaml:"authTokenType" mapstructure:"authTokenType" json:"auth_token_type"`
	AuthToken     string `yaml:"authToken" mapstructure:"authToken" json:"auth_token"`
}

type Timeouts struct {
	Request time.Duration `yaml:"request" mapstructure:"request" validate:"gte=0"`
	Wait    time.Duration `yaml:"wait" mapstructure:"wait"`
}

type Retry struct {
	MaxRetries      int           `yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
	InitialInterval time.Duration `yaml:"initialInterval" mapstructure:"initialInterval" validate:"gt=0"`
	MaxInterval     time.Duration `yaml:"maxInterval" mapstructure:"maxInterval" validate:"gtefield=InitialInterval"`
}

type Polling struct {
	Initial    time.Duration `yaml:"initial" mapstructure:"initial" validate:"gt=0"`
	Multiplier float64       `yaml:"multiplier" mapstructure:"multiplier" validate:"gte=1"`
	Max        time.Duration `yaml:"max" mapstructure:"max" validate:"gtefield=Initial"`
}

type RateLimit struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond" mapstructure:"requestsPerSecond" validate:"gte=0"`
	Burst             int     `yaml:"burst" mapstructure:"burst" validate:"gte=0"`
}

// Environment holds the DX_* variables, merged from the environment file and the process environment.
type Environment map[string]string
