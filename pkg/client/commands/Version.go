package commands

import (
	"fmt"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/command"
)

func Version() {
	Commands = append(Commands,
		command.NewBuilder().
			Name("version").
			Short("Print the client version").
			Function(func(cli *client.Client, args []string) error {
				_, err := fmt.Fprintln(cli.Out, cli.Version.String())
				return err
			}).
			BuildWithValidation(),
	)
}
