package startup

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/dxtoolkit/dxgo/pkg/configuration"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration from defaults, the YAML file at path (optional),
// and finally the environment. A missing file is not an error.
func Load(path string, environment configuration.Environment) (*configuration.Configuration, error) {
	configObj := configuration.NewConfig()

	if path != "" {
		file, err := os.Open(path)

		switch {
		case err == nil:
			defer file.Close()

			v := viper.New()
			v.SetConfigType("yaml")

			if err = v.ReadConfig(file); err != nil {
				return nil, errors.Wrapf(err, "failed to parse %s", path)
			}

			if err = v.Unmarshal(configObj); err != nil {
				return nil, errors.Wrapf(err, "failed to decode %s", path)
			}
		case !os.IsNotExist(err):
			return nil, errors.Wrapf(err, "failed to open %s", path)
		}
	}

	if environment != nil {
		if err := environment.Apply(configObj); err != nil {
			return nil, err
		}
	}

	if err := configObj.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return configObj, nil
}

func Save(configObj *configuration.Configuration, path string) error {
	yamlObj, err := yaml.Marshal(configObj)

	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	return os.WriteFile(path, yamlObj, 0600)
}

func EmulatorFlags() {
	flag.String("log", static.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error")
	flag.Int("port", static.DEFAULT_EMULATOR_PORT, "Port the emulator listens on")
	flag.String("project", "project-emulator", "Project created on startup")
	flag.Int("closing", 1, "Number of describe calls a file or gtable reports the closing state for")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)
}
