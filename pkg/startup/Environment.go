package startup

import (
	"os"
	"path/filepath"

	"github.com/dxtoolkit/dxgo/pkg/configuration"
	"github.com/dxtoolkit/dxgo/pkg/static"
)

func GetHomeDirectory() string {
	HOMEDIR, err := os.UserHomeDir()

	if err != nil {
		return ""
	}

	return HOMEDIR
}

func DefaultConfigPath(home string) string {
	return filepath.Join(home, static.CONFIGDIR, static.CONFIGFILE)
}

func GetEnvironmentInfo(home string) (configuration.Environment, error) {
	return configuration.NewEnvironment(home)
}
