package cmd

import (
	"fmt"
	"os"

	"github.com/FluidXR/peripheral/internal/config"
	"github.com/FluidXR/peripheral/internal/session"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scripted walkthrough on the built-in fleet",
	Long: `Builds the default fleet (laserjet, epson, officejet) regardless of the config
file and runs the scripted walkthrough: each device is connected, exercised and
disconnected, then operations are attempted on disconnected devices.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		fleet, err := session.BuildFleet(config.DefaultConfig().Devices)
		if err != nil {
			return err
		}

		j := openJournal(cfg)
		if j != nil {
			defer j.Close()
		}

		runner := &session.Runner{
			Fleet:   fleet,
			Journal: j,
			Logger:  logger,
			Out:     cmd.OutOrStdout(),
			RunID:   newRunID(),
		}
		result := runner.RunScenes(session.Demo())
		printRunResult(result)
		return nil
	},
}

func printRunResult(r session.Result) {
	fmt.Printf("\nRun: %s\n", r.RunID)
	fmt.Printf("  Applied: %d\n", r.Applied)
	fmt.Printf("  Declined: %d\n", r.Declined)
	for _, e := range r.Errors {
		fmt.Fprintf(os.Stderr, "  Error: %s\n", e)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
