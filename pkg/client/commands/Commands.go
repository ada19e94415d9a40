package commands

import (
	"fmt"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/command"
	"github.com/dxtoolkit/dxgo/pkg/contracts/icommand"
	"github.com/dxtoolkit/dxgo/pkg/formaters"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Commands []icommand.Command

func PreloadCommands() {
	Commands = nil

	Objects()
	Annotations()
	Details()
	Containers()
	Executables()
	Config()
	Version()
}

// Run attaches every preloaded command to root and executes it with args.
func Run(cli *client.Client, root *cobra.Command, args []string) error {
	root.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
	})

	root.SetArgs(args)
	root.SetOut(cli.Out)

	SetupGlobalFlags(root)

	for _, cmd := range Commands {
		cobraCmd := &cobra.Command{
			Use:   cmd.GetName(),
			Short: cmd.GetShort(),
			Args:  cmd.GetArgs(),
			PreRunE: func(c *cobra.Command, args []string) error {
				var err error

				c.Flags().VisitAll(func(flag *pflag.Flag) {
					if bindErr := viper.BindPFlag(flag.Name, flag); bindErr != nil && err == nil {
						err = fmt.Errorf("failed to bind flag '%s': %w", flag.Name, bindErr)
					}
				})

				if err != nil {
					return err
				}

				if !cmd.GetCondition(cli) {
					return fmt.Errorf("condition failed for command %s", c.CommandPath())
				}

				for _, dep := range cmd.GetDependsOn() {
					if err = dep(cli, args); err != nil {
						return err
					}
				}

				return nil
			},
			RunE: func(c *cobra.Command, args []string) error {
				functions := cmd.GetFunctions()

				if len(functions) == 0 {
					return c.Help()
				}

				for _, fn := range functions {
					if err := fn(cli, args); err != nil {
						return err
					}
				}

				return nil
			},
		}

		cmd.SetFlags(cobraCmd)

		if cmd.GetParent() == command.ROOT || cmd.GetParent() == "" {
			root.AddCommand(cobraCmd)
			continue
		}

		parent := findCommand(root, cmd.GetParent())

		if parent == nil {
			return fmt.Errorf("parent command '%s' not found for '%s'", cmd.GetParent(), cmd.GetName())
		}

		parent.AddCommand(cobraCmd)
	}

	return root.Execute()
}

func SetupGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().String("log", static.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error")
	root.PersistentFlags().String("config", "", "Path to the configuration file (default ~/.dnanexus_config/config.yaml)")
	root.PersistentFlags().String("project", "", "Project to work in instead of the configured workspace")
	root.PersistentFlags().StringP("output", "o", formaters.OUTPUT_TABLE, "Output format: table or json")

	viper.BindPFlag("log", root.PersistentFlags().Lookup("log"))
	viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	viper.BindPFlag("project", root.PersistentFlags().Lookup("project"))
	viper.BindPFlag("output", root.PersistentFlags().Lookup("output"))
}

// findCommand looks up name among the commands under cmd. Command names are unique per tree.
func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Name() == name {
		return cmd
	}

	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}

	return nil
}
