package client

import (
	"io"

	"github.com/dxtoolkit/dxgo/pkg/configuration"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/version"
)

// Client hands out object handles bound to one API server and one workspace.
type Client struct {
	Configuration *configuration.Configuration
	Invoker       iinvoker.Invoker
	Workspace     string
	Version       *version.Version

	// Options are applied to every handle the client builds.
	Options []objects.Option

	Out io.Writer
}
