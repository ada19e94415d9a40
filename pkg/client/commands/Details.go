package commands

import (
	"context"
	json2 "encoding/json"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/command"
	"github.com/dxtoolkit/dxgo/pkg/formaters"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Details() {
	Commands = append(Commands,
		command.NewBuilder().Name("details").Short("Read and write the details document of an object").BuildWithValidation(),
		command.NewBuilder().
			Parent("details").
			Name("get").
			Short("Print the details").
			Args(cobra.ExactArgs(1)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				details, err := obj.GetDetails(context.Background())

				if err != nil {
					return err
				}

				return formaters.Json(cli.Out, details)
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("details").
			Name("set").
			Short("Replace the details with a JSON object or array").
			Args(cobra.ExactArgs(2)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().Bool("dry-run", false, "Show the changes without applying them")
			}).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				ctx := context.Background()

				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				details := json2.RawMessage(args[1])

				if viper.GetBool("dry-run") {
					patch, err := obj.DiffDetails(ctx, details)

					if err != nil {
						return err
					}

					formaters.Diff(cli.Out, patch)
					return nil
				}

				return obj.SetDetails(ctx, details)
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("details").
			Name("patch").
			Short("Patch the details with a JSON patch array or a merge patch object").
			Args(cobra.ExactArgs(2)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				patched, err := obj.PatchDetails(context.Background(), []byte(args[1]))

				if err != nil {
					return err
				}

				return formaters.Json(cli.Out, json2.RawMessage(patched))
			}).
			BuildWithValidation(),
	)
}
