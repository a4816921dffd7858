package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage file type categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured categories and their extensions",
	Run: func(cmd *cobra.Command, args []string) {
		for i, rule := range org.Config().Categories {
			fmt.Printf("%d. %s: %s\n", i+1, rule.Name, strings.Join(rule.Extensions, ", "))
		}
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name> <ext,ext,...>",
	Short: "Add a new category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		extensions := strings.Split(args[1], ",")
		if !org.Config().AddCategory(name, extensions) {
			return fmt.Errorf("category %q already exists or extensions are empty", name)
		}
		if err := org.SaveConfig(); err != nil {
			return err
		}
		fmt.Printf("Category %q added.\n", name)
		return nil
	},
}

var categoryEditCmd = &cobra.Command{
	Use:   "edit <number> <ext,ext,...>",
	Short: "Replace a category's extensions by its list position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %s", args[0])
		}
		extensions := strings.Split(args[1], ",")
		if err := org.Config().SetCategoryExtensions(n-1, extensions); err != nil {
			return err
		}
		if err := org.SaveConfig(); err != nil {
			return err
		}
		fmt.Println("Category updated.")
		return nil
	},
}

var categoryRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a category by its list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %s", args[0])
		}
		if err := org.Config().RemoveCategory(n - 1); err != nil {
			return err
		}
		if err := org.SaveConfig(); err != nil {
			return err
		}
		fmt.Println("Category removed.")
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd, categoryEditCmd, categoryRemoveCmd)
	rootCmd.AddCommand(categoryCmd)
}
