package commands

import (
	"fmt"
	"strings"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/command"
	"github.com/dxtoolkit/dxgo/pkg/startup"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func Config() {
	Commands = append(Commands,
		command.NewBuilder().Name("config").Short("Inspect and persist the client configuration").BuildWithValidation(),
		command.NewBuilder().
			Parent("config").
			Name("show").
			Short("Print the effective configuration with the token masked").
			DependsOn(Configure).
			Function(func(cli *client.Client, args []string) error {
				masked := *cli.Configuration

				if masked.Security.AuthToken != "" {
					masked.Security.AuthToken = strings.Repeat("*", 8)
				}

				out, err := yaml.Marshal(&masked)

				if err != nil {
					return err
				}

				_, err = fmt.Fprint(cli.Out, string(out))
				return err
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("config").
			Name("save").
			Short("Write the effective configuration to the configuration file").
			Args(cobra.MaximumNArgs(1)).
			DependsOn(Configure).
			Function(func(cli *client.Client, args []string) error {
				path := viper.GetString("config")

				if len(args) == 1 {
					path = args[0]
				}

				if path == "" {
					path = startup.DefaultConfigPath(startup.GetHomeDirectory())
				}

				if err := startup.Save(cli.Configuration, path); err != nil {
					return err
				}

				fmt.Fprintf(cli.Out, "configuration saved to %s\n", path)
				return nil
			}).
			BuildWithValidation(),
	)
}
