package command

import (
	"github.com/spf13/cobra"
)

const ROOT = "dxctl"

func New() *cobra.Command {
	return &cobra.Command{
		Use:           ROOT,
		Short:         "Manage data objects on the platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
