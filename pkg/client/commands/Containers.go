package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/command"
	"github.com/dxtoolkit/dxgo/pkg/formaters"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/dxtoolkit/dxgo/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Containers() {
	Commands = append(Commands,
		command.NewBuilder().
			Name("move").
			Short("Move an object to another folder of the current project").
			Args(cobra.ExactArgs(2)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				return obj.Move(context.Background(), args[1])
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("remove").
			Short("Remove an object from the current project").
			Args(cobra.ExactArgs(1)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
			}).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				if !viper.GetBool("yes") && !utils.Confirm(fmt.Sprintf("Remove %s from %s", obj.ID(), obj.GetProjectID()), nil, nil) {
					fmt.Fprintln(cli.Out, "aborted")
					return nil
				}

				return obj.Remove(context.Background())
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Name("clone").
			Short("Clone an object into another project").
			Args(cobra.ExactArgs(2)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().String("folder", static.ROOTPROJECT, "Destination folder")
			}).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				clone, err := obj.Clone(context.Background(), args[1], viper.GetString("folder"))

				if err != nil {
					return err
				}

				return formaters.Json(cli.Out, clone.Link())
			}).
			BuildWithValidation(),

		command.NewBuilder().Name("folder").Short("Manage folders of the current project").BuildWithValidation(),
		command.NewBuilder().
			Parent("folder").
			Name("list").
			Short("List a folder").
			Args(cobra.MaximumNArgs(1)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				folder := static.ROOTPROJECT

				if len(args) == 1 {
					folder = args[0]
				}

				listing, err := cli.Project(cli.Workspace).ListFolder(context.Background(), folder)

				if err != nil {
					return err
				}

				return render(cli, listing, func(w io.Writer) {
					formaters.Folder(w, listing)
				})
			}).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("folder").
			Name("new").
			Short("Create a folder").
			Args(cobra.ExactArgs(1)).
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().BoolP("parents", "p", false, "Create missing parent folders")
			}).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				return cli.Project(cli.Workspace).NewFolder(context.Background(), args[0], viper.GetBool("parents"))
			}).
			BuildWithValidation(),
	)
}
