package icommand

import (
	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/spf13/cobra"
)

// Command is one registered CLI command. Functions run in order after every DependsOn succeeds.
type Command interface {
	GetParent() string
	GetName() string
	GetShort() string
	GetArgs() func(*cobra.Command, []string) error
	SetFlags(cmd *cobra.Command)
	GetCondition(cli *client.Client) bool
	GetFunctions() []func(*client.Client, []string) error
	GetDependsOn() []func(*client.Client, []string) error
}
