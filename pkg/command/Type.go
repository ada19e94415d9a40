package command

import (
	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/spf13/cobra"
)

type Client struct {
	Parent    string
	Name      string
	Short     string
	Args      func(*cobra.Command, []string) error
	Condition func(client *client.Client) bool
	Functions []func(*client.Client, []string) error
	DependsOn []func(*client.Client, []string) error
	Flags     func(command *cobra.Command)
}
