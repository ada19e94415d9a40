package commands

import (
	"context"
	"fmt"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/command"
	"github.com/dxtoolkit/dxgo/pkg/kinds"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/kinds/job"
	"github.com/dxtoolkit/dxgo/pkg/static"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Executables() {
	Commands = append(Commands,
		command.NewBuilder().
			Name("run").
			Short("Run an applet or app and print the job ID").
			Args(cobra.ExactArgs(1)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().String("input", "{}", "Job input as a JSON object")
				cmd.Flags().String("name", "", "Job name")
				cmd.Flags().String("folder", "", "Output folder")
				cmd.Flags().Bool("wait", false, "Wait until the job is done")
				cmd.Flags().Duration("timeout", 0, "Give up waiting after this long; negative waits forever (default: timeouts.wait from the configuration)")
			}).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				ctx := context.Background()

				options := common.RunOptions{
					Name:   viper.GetString("name"),
					Folder: viper.GetString("folder"),
				}

				input := make(map[string]any)

				if err := json.Unmarshal([]byte(viper.GetString("input")), &input); err != nil {
					return errors.Wrap(apierrors.ErrInvalidInput, fmt.Sprintf("input must be a JSON object: %s", err))
				}

				options.Input = input

				started, err := run(ctx, cli, args[0], options)

				if err != nil {
					return err
				}

				printID(cli, started.ID())

				if !viper.GetBool("wait") {
					return nil
				}

				return started.WaitOnDone(ctx, waitTimeout(started.Object))
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("terminate").
			Short("Terminate a running job").
			Args(cobra.ExactArgs(1)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				return cli.Job(args[0]).Terminate(context.Background())
			}).
			BuildWithValidation(),
	)
}

func run(ctx context.Context, cli *client.Client, id string, options common.RunOptions) (*job.Job, error) {
	class, err := kinds.ClassOf(id)

	if err != nil {
		return nil, err
	}

	switch class {
	case static.CLASS_APPLET:
		return cli.Applet(id).Run(ctx, options)
	case static.CLASS_APP:
		return cli.App(id).Run(ctx, options)
	default:
		return nil, errors.Wrapf(apierrors.ErrInvalidInput, "%s is not an applet or app", id)
	}
}
