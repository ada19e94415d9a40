package main

import (
	"fmt"
	"os"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/client/commands"
	"github.com/dxtoolkit/dxgo/pkg/command"
	"github.com/dxtoolkit/dxgo/pkg/formaters"
	"github.com/dxtoolkit/dxgo/pkg/version"
)

func main() {
	formaters.Setup(os.Stdout)

	// Configuration and transport are loaded lazily by the commands that need them
	cli := &client.Client{
		Version: version.New(version.Client),
		Out:     os.Stdout,
	}

	commands.PreloadCommands()

	if err := commands.Run(cli, command.New(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
