package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Manage exclude patterns",
	Long: `Exclude patterns are regular expressions matched anywhere within a
filename. Matching files are skipped during organization and left in place.`,
}

var excludeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current exclude patterns",
	Run: func(cmd *cobra.Command, args []string) {
		patterns := org.Config().ExcludePatterns
		if len(patterns) == 0 {
			fmt.Println("No patterns defined.")
			return
		}
		for i, pattern := range patterns {
			fmt.Printf("%d. %s\n", i+1, pattern)
		}
	},
}

var excludeAddCmd = &cobra.Command{
	Use:   "add <pattern>",
	Short: "Add an exclude pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := org.AddExcludePattern(args[0]); err != nil {
			return err
		}
		fmt.Printf("Pattern %q added.\n", args[0])
		return nil
	},
}

var excludeRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove an exclude pattern by its list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %s", args[0])
		}
		if err := org.RemoveExcludePattern(n - 1); err != nil {
			return err
		}
		fmt.Println("Pattern removed.")
		return nil
	},
}

func init() {
	excludeCmd.AddCommand(excludeListCmd, excludeAddCmd, excludeRemoveCmd)
	rootCmd.AddCommand(excludeCmd)
}
