package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive terminal session",
	Run: func(cmd *cobra.Command, args []string) {
		NewSession(org, os.Stdin, os.Stdout).Run()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
