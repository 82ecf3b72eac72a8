package cmd

import (
	"fmt"

	"github.com/FluidXR/peripheral/internal/config"
	"github.com/FluidXR/peripheral/internal/journal"

	"github.com/spf13/cobra"
)

var (
	historyRun   string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded operation outcomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		j, err := journal.Open(cfg.JournalDir())
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		var entries []journal.Entry
		if historyRun != "" {
			entries, err = j.Run(historyRun)
		} else {
			entries, err = j.Recent(historyLimit)
		}
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No outcomes recorded.")
			return nil
		}
		for _, e := range entries {
			reason := ""
			if e.Reason != "" {
				reason = fmt.Sprintf(" (%s)", e.Reason)
			}
			fmt.Printf("%s  %-8s %-12s %-10s %s%s\n",
				e.RecordedAt.Local().Format("2006-01-02 15:04:05"),
				e.RunID[:min(8, len(e.RunID))], e.DeviceName, e.Operation, e.Status, reason)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyRun, "run", "", "Show every outcome of one run")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of recent outcomes to show")
	rootCmd.AddCommand(historyCmd)
}
