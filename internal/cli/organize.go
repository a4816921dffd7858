package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"organizer/internal/output"
	"organizer/internal/watcher"
)

var (
	organizeByDate bool
	organizeCopy   bool
	organizeWatch  bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize <directory>",
	Short: "Organize the files of a directory into category folders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		directory := args[0]

		cfg := output.DefaultConfig()
		cfg.Verbose = verbose
		out := output.New(cfg)

		if organizeWatch {
			return runWatch(directory, out)
		}

		out.Progress("Processing...")
		start := time.Now()

		_, err := org.Run(directory, organizeByDate, organizeCopy)
		out.EndProgress()
		if err != nil {
			return err
		}

		elapsed := time.Since(start)
		out.Info("%s", org.SummaryText())
		out.Info("Operation completed in %.2f seconds", elapsed.Seconds())
		out.Verbose("undo history depth: %d", org.History().Len())
		return nil
	},
}

// runWatch keeps organizing the directory as new files settle,
// until interrupted.
func runWatch(directory string, out *output.Output) error {
	// An initial pass picks up whatever is already there.
	if _, err := org.Run(directory, organizeByDate, organizeCopy); err != nil {
		return err
	}
	out.Info("%s", org.SummaryText())

	w := watcher.New(nil, func(path string) error {
		_, err := org.Run(directory, organizeByDate, organizeCopy)
		return err
	})
	if err := w.Start(directory); err != nil {
		return err
	}

	out.Info("Watching %s for new files (Ctrl-C to stop)...", directory)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	summary := w.Stop()
	out.Info("Watch session: %d handled, %d skipped, %d errors in %s",
		summary.FilesHandled, summary.FilesSkipped, summary.Errors,
		summary.Duration.Round(time.Second))
	return nil
}

func init() {
	organizeCmd.Flags().BoolVarP(&organizeByDate, "by-date", "d", false, "split categories into per-day subfolders by modification date")
	organizeCmd.Flags().BoolVarP(&organizeCopy, "copy", "c", false, "copy files instead of moving them")
	organizeCmd.Flags().BoolVarP(&organizeWatch, "watch", "w", false, "keep watching the directory and organize new files as they settle")
	rootCmd.AddCommand(organizeCmd)
}

// statsCmd prints the summary of the most recent run in this process.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics from the last organize run",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(org.SummaryText())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
