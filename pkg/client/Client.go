package client

import (
	"os"

	"github.com/dxtoolkit/dxgo/pkg/configuration"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/network"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/version"
)

// New builds a client from config. A nil invoker talks HTTP to the configured API server.
func New(config *configuration.Configuration, invoker iinvoker.Invoker) *Client {
	if invoker == nil {
		invoker = network.New(config, nil)
	}

	options := []objects.Option{objects.WithPolling(config.Polling)}

	if config.Timeouts != nil {
		options = append(options, objects.WithWaitTimeout(config.Timeouts.Wait))
	}

	return &Client{
		Configuration: config,
		Invoker:       invoker,
		Workspace:     config.Workspace(),
		Version:       version.New(version.Client),
		Options:       options,
		Out:           os.Stdout,
	}
}

// SetWorkspace changes the project used by handles built from now on.
func (client *Client) SetWorkspace(project string) {
	if project != "" {
		client.Workspace = project
	}
}
