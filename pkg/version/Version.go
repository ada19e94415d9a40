package version

import (
	"runtime"
	"strings"
)

// Client is overridden at build time with -ldflags "-X github.com/dxtoolkit/dxgo/pkg/version.Client=...".
var Client = "dev"

func New(client string) *Version {
	return &Version{
		Client: strings.TrimSpace(client),
		Go:     runtime.Version(),
	}
}

func (version *Version) String() string {
	return version.Client + " (" + version.Go + ")"
}
