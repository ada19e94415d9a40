package command

import (
	"fmt"
	"strings"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/spf13/cobra"
)

// Builder assembles a Client step by step. Commands without Args accept no positional arguments.
type Builder struct {
	command Client
}

func NewBuilder() *Builder {
	return &Builder{
		command: Client{
			Parent: ROOT,
			Args:   cobra.NoArgs,
		},
	}
}

func (cb *Builder) Parent(parent string) *Builder {
	cb.command.Parent = parent
	return cb
}

func (cb *Builder) Name(name string) *Builder {
	cb.command.Name = name
	return cb
}

func (cb *Builder) Short(short string) *Builder {
	cb.command.Short = short
	return cb
}

func (cb *Builder) Flags(flags func(cmd *cobra.Command)) *Builder {
	cb.command.Flags = flags
	return cb
}

func (cb *Builder) Args(args func(*cobra.Command, []string) error) *Builder {
	cb.command.Args = args
	return cb
}

// Function appends fn. Functions run in the order they were added and stop at the first error.
func (cb *Builder) Function(fn func(*client.Client, []string) error) *Builder {
	cb.command.Functions = append(cb.command.Functions, fn)
	return cb
}

func (cb *Builder) Condition(fn func(*client.Client) bool) *Builder {
	cb.command.Condition = fn
	return cb
}

func (cb *Builder) DependsOn(fns ...func(*client.Client, []string) error) *Builder {
	cb.command.DependsOn = append(cb.command.DependsOn, fns...)
	return cb
}

func (cb *Builder) Validate() error {
	switch {
	case cb.command.Name == "":
		return fmt.Errorf("command name is required")
	case strings.ContainsAny(cb.command.Name, " \t"):
		return fmt.Errorf("command name '%s' must be a single word", cb.command.Name)
	case cb.command.Parent == "":
		return fmt.Errorf("parent of command '%s' is required", cb.command.Name)
	}

	return nil
}

func (cb *Builder) Build() Client {
	built := cb.command
	built.Functions = append([]func(*client.Client, []string) error(nil), cb.command.Functions...)
	built.DependsOn = append([]func(*client.Client, []string) error(nil), cb.command.DependsOn...)

	return built
}

func (cb *Builder) BuildWithValidation() Client {
	if err := cb.Validate(); err != nil {
		panic(err)
	}

	return cb.Build()
}
