package commands

import (
	"io"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/formaters"
	"github.com/dxtoolkit/dxgo/pkg/logger"
	"github.com/dxtoolkit/dxgo/pkg/network"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/startup"
	"github.com/spf13/viper"
)

// Connect loads the configuration unless the client already has an invoker, then applies --project.
func Connect(cli *client.Client, args []string) error {
	if cli.Invoker == nil {
		if err := Configure(cli, args); err != nil {
			return err
		}

		cli.Invoker = network.New(cli.Configuration, nil)
		cli.Workspace = cli.Configuration.Workspace()
		cli.Options = append(cli.Options, objects.WithPolling(cli.Configuration.Polling))
	}

	cli.SetWorkspace(viper.GetString("project"))

	return nil
}

// Configure loads the configuration file and environment into cli unless it already has one.
// The --log level takes effect here.
func Configure(cli *client.Client, _ []string) error {
	if cli.Configuration != nil {
		return nil
	}

	logger.Log = logger.NewLogger(viper.GetString("log"), logger.ENCODING_CONSOLE, "stderr")

	home := startup.GetHomeDirectory()

	environment, err := startup.GetEnvironmentInfo(home)

	if err != nil {
		return err
	}

	path := viper.GetString("config")

	if path == "" {
		path = startup.DefaultConfigPath(home)
	}

	cli.Configuration, err = startup.Load(path, environment)

	return err
}

// render writes v as indented JSON with -o json, otherwise hands the writer to table.
func render(cli *client.Client, v any, table func(w io.Writer)) error {
	if viper.GetString("output") == formaters.OUTPUT_JSON {
		return formaters.Json(cli.Out, v)
	}

	table(cli.Out)

	return nil
}

// waitTimeout is --timeout when given, otherwise the wait timeout the handle was configured with.
func waitTimeout(obj *objects.Object) time.Duration {
	if viper.IsSet("timeout") {
		return viper.GetDuration("timeout")
	}

	return obj.WaitTimeout()
}
