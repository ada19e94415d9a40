package configuration

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var environmentKeys = []string{
	static.ENV_APISERVER_HOST,
	static.ENV_APISERVER_PORT,
	static.ENV_APISERVER_PROTOCOL,
	static.ENV_SECURITY_CONTEXT,
	static.ENV_PROJECT_CONTEXT_ID,
	static.ENV_WORKSPACE_ID,
	static.ENV_JOB_ID,
}

// NewEnvironment reads $home/.dnanexus_config/environment (if present) and then the
// process environment bound through viper. Process variables, even empty ones, take precedence
// over the file.
func NewEnvironment(home string) (Environment, error) {
	env := Environment{}

	if home != "" {
		path := filepath.Join(home, static.CONFIGDIR, static.ENVFILE)

		if _, err := os.Stat(path); err == nil {
			values, err := godotenv.Read(path)

			if err != nil {
				return nil, errors.Wrapf(err, "failed to read environment file %s", path)
			}

			for _, key := range environmentKeys {
				if value, ok := values[key]; ok {
					env[key] = value
				}
			}
		}
	}

	v := viper.New()
	v.AllowEmptyEnv(true)

	for _, key := range environmentKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "failed to bind %s", key)
		}

		if v.IsSet(key) {
			env[key] = v.GetString(key)
		}
	}

	return env, nil
}

// Apply overlays the environment on top of the configuration.
func (env Environment) Apply(c *Configuration) error {
	if value, ok := env[static.ENV_APISERVER_HOST]; ok && value != "" {
		c.APIServer.Host = value
	}

	if value, ok := env[static.ENV_APISERVER_PORT]; ok && value != "" {
		port, err := strconv.Atoi(value)

		if err != nil {
			return errors.Wrapf(err, "%s is not a number", static.ENV_APISERVER_PORT)
		}

		c.APIServer.Port = port
	}

	if value, ok := env[static.ENV_APISERVER_PROTOCOL]; ok && value != "" {
		c.APIServer.Protocol = value
	}

	if value, ok := env[static.ENV_SECURITY_CONTEXT]; ok && value != "" {
		security := Security{}

		if err := json.Unmarshal([]byte(value), &security); err != nil {
			return errors.Wrapf(err, "%s is not valid JSON", static.ENV_SECURITY_CONTEXT)
		}

		c.Security = security
	}

	if value, ok := env[static.ENV_PROJECT_CONTEXT_ID]; ok {
		c.ProjectContextID = value
	}

	if value, ok := env[static.ENV_WORKSPACE_ID]; ok {
		c.WorkspaceID = value
	}

	if value, ok := env[static.ENV_JOB_ID]; ok {
		c.JobID = value
	}

	return nil
}
