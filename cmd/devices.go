package cmd

import (
	"fmt"

	"github.com/FluidXR/peripheral/internal/config"
	"github.com/FluidXR/peripheral/internal/session"

	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List configured devices and their journal stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if len(cfg.Devices) == 0 {
			fmt.Println("No devices configured.")
			return nil
		}

		fleet, err := session.BuildFleet(cfg.Devices)
		if err != nil {
			return err
		}

		j := openJournal(cfg)
		if j != nil {
			defer j.Close()
		}

		for _, name := range fleet.Names() {
			d, _ := fleet.Get(name)
			fmt.Printf("%-12s [%s] %s\n", name, d.Kind(), d)

			if j != nil {
				stats, err := j.GetDeviceStats(name)
				if err == nil && stats.Total > 0 {
					fmt.Printf("  Outcomes: %d | Applied: %d | Declined: %d\n",
						stats.Total, stats.Applied, stats.Declined)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
