package configure

import (
	"github.com/spf13/cobra"
)

func NewConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure ChatLift CLI options",
	}

	cmd.AddCommand(NewRemoteCmd())

	return cmd
}
