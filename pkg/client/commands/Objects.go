package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/command"
	"github.com/dxtoolkit/dxgo/pkg/formaters"
	"github.com/dxtoolkit/dxgo/pkg/kinds"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Objects() {
	Commands = append(Commands,
		command.NewBuilder().
			Name("describe").
			Short("Describe an object as seen from the current project").
			Args(cobra.ExactArgs(1)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().Bool("properties", false, "Include properties")
				cmd.Flags().Bool("details", false, "Include details")
			}).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				description, err := obj.Describe(context.Background(), objects.DescribeOptions{
					Properties: viper.GetBool("properties"),
					Details:    viper.GetBool("details"),
				})

				if err != nil {
					return err
				}

				return render(cli, description.Raw, func(w io.Writer) {
					formaters.Description(w, description)
				})
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("rename").
			Short("Rename an object in the current project").
			Args(cobra.ExactArgs(2)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				return obj.Rename(context.Background(), args[1])
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("hide").
			Short("Hide an object").
			Args(cobra.ExactArgs(1)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				return obj.Hide(context.Background())
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("unhide").
			Short("Make a hidden object visible").
			Args(cobra.ExactArgs(1)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				return obj.Unhide(context.Background())
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("close").
			Short("Close an open object").
			Args(cobra.ExactArgs(1)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().Bool("wait", false, "Wait until the object is closed")
				cmd.Flags().Duration("timeout", 0, "Give up waiting after this long; negative waits forever (default: timeouts.wait from the configuration)")
			}).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				return common.CloseAndWait(context.Background(), obj, viper.GetBool("wait"), waitTimeout(obj))
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("wait").
			Short("Wait until an object reaches a state, or a job is done").
			Args(cobra.ExactArgs(1)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().String("state", static.STATE_CLOSED, "State to wait for")
				cmd.Flags().Duration("timeout", 0, "Give up after this long; negative waits forever, zero checks once (default: timeouts.wait from the configuration)")
			}).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				ctx := context.Background()

				class, err := kinds.ClassOf(args[0])

				if err != nil {
					return err
				}

				if class == static.CLASS_JOB {
					handle := cli.Job(args[0])
					return handle.WaitOnDone(ctx, waitTimeout(handle.Object))
				}

				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				return obj.WaitOnState(ctx, viper.GetString("state"), waitTimeout(obj))
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("projects").
			Short("List the projects holding a copy of an object").
			Args(cobra.ExactArgs(1)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				projects, err := obj.ListProjects(context.Background())

				if err != nil {
					return err
				}

				return render(cli, projects, func(w io.Writer) {
					formaters.Projects(w, projects)
				})
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("link").
			Short("Print the link that references an object").
			Args(cobra.ExactArgs(1)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				return formaters.Json(cli.Out, obj.Link())
			}).
			BuildWithValidation(),
	)
}

func printID(cli *client.Client, id string) {
	fmt.Fprintln(cli.Out, id)
}
