package command

import (
	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/spf13/cobra"
)

func (command Client) GetName() string {
	return command.Name
}

func (command Client) GetParent() string {
	return command.Parent
}

func (command Client) GetShort() string {
	return command.Short
}

func (command Client) GetArgs() func(*cobra.Command, []string) error {
	if command.Args == nil {
		return cobra.NoArgs
	}

	return command.Args
}

func (command Client) GetCondition(c *client.Client) bool {
	if command.Condition == nil {
		return true
	}

	return command.Condition(c)
}

func (command Client) GetFunctions() []func(*client.Client, []string) error {
	return command.Functions
}

func (command Client) GetDependsOn() []func(*client.Client, []string) error {
	return command.DependsOn
}

func (command Client) SetFlags(cmd *cobra.Command) {
	if command.Flags != nil {
		command.Flags(cmd)
	}
}
