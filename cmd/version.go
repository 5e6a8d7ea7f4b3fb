package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatlift/chatlift-cli/helper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of the ChatLift CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(helper.CliVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
