// Package cli implements the organizer command-line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"organizer/internal/config"
	"organizer/internal/logger"
	"organizer/internal/orchestrator"
)

var (
	configPath string
	verbose    bool

	// org is built once per invocation in the root PersistentPreRun and
	// shared by all subcommands.
	org *orchestrator.Organizer
)

var rootCmd = &cobra.Command{
	Use:   "organizer",
	Short: "Classify files into category folders by extension",
	Long: `Organizer sorts the files of a directory into category folders
(Photos, Documents, Music, ...) based on their extension, optionally
splitting them further by modification date. Transfers can be moves or
copies, name collisions never overwrite, and the last operation can be
undone.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(logger.FileName, verbose)

		path := configPath
		if path == "" {
			defaultPath, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = defaultPath
		}

		cfg, err := config.LoadOrDefault(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("using default configuration")
		} else {
			log.Info().Str("path", path).Msg("configuration loaded")
		}

		org = orchestrator.New(cfg)
		org.ConfigPath = path
		return nil
	},
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: organizer_config.json next to the executable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging to the console")
}
