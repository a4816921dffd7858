package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent file operation",
	Long: `Undo reverses the most recent move or copy recorded in this
process. Undo history is in-memory only: it does not survive across
program restarts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if org.UndoLast() {
			fmt.Println("Last operation has been undone.")
		} else {
			fmt.Println("No operations to undo or undo failed.")
		}
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
