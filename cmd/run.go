package cmd

import (
	"fmt"

	"github.com/FluidXR/peripheral/internal/config"
	"github.com/FluidXR/peripheral/internal/session"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <device> <op[:arg]>...",
	Short: "Run operations against a configured device",
	Long: `Builds the configured fleet and runs the given operations, in order, against one
device. Device state lives only for the duration of the command.

Operations: connect, disconnect, print:<document>, scan:<document>, refill:<amount>,
status, set-connection:<ethernet|wifi|bluetooth|usb>, set-resolution:<dpi>

Example: peripheral run officejet connect print:report.pdf scan:receipt.png status`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		var steps []session.Step
		for _, a := range args[1:] {
			step, err := session.ParseStep(name, a)
			if err != nil {
				return err
			}
			steps = append(steps, step)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if _, ok := cfg.Find(name); !ok {
			return fmt.Errorf("device %q not found in config", name)
		}
		fleet, err := session.BuildFleet(cfg.Devices)
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
		result := runner.Run(steps)
		printRunResult(result)
		if len(result.Errors) > 0 {
			return fmt.Errorf("%d step(s) failed", len(result.Errors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
