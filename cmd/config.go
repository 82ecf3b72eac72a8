package cmd

import (
	"fmt"

	"github.com/FluidXR/peripheral/internal/config"
	"github.com/FluidXR/peripheral/internal/device"

	"github.com/spf13/cobra"
)

var (
	addConnection string
	addInk        int
	addResolution int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage peripheral configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Config file: %s\n\n", config.ConfigPath())
		fmt.Printf("Journal: %s", cfg.JournalDir())
		if !cfg.Journal.Enabled {
			fmt.Print(" (disabled)")
		}
		fmt.Printf("\n\nDevices:\n")
		if len(cfg.Devices) == 0 {
			fmt.Println("  (none configured)")
		}
		for _, dc := range cfg.Devices {
			fmt.Printf("  - %s: %s %q", dc.Name, dc.Kind, dc.Model)
			if dc.Connection != "" {
				fmt.Printf(" [%s]", dc.Connection)
			}
			if dc.InkLevel != nil {
				fmt.Printf(" ink=%d%%", *dc.InkLevel)
			}
			if dc.ScanResolution != nil {
				fmt.Printf(" resolution=%ddpi", *dc.ScanResolution)
			}
			fmt.Println()
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Config created at %s\n", config.ConfigPath())
		return nil
	},
}

var configAddDeviceCmd = &cobra.Command{
	Use:   "add-device <name> <kind> <model>",
	Short: "Add a device to the fleet",
	Long: `Kinds: printer, scanner, printer-scanner.

Example: peripheral config add-device label printer "Brother QL-820" --connection usb --ink 60`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, model := args[0], args[2]
		kind, err := device.ParseKind(args[1])
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if _, exists := cfg.Find(name); exists {
			return fmt.Errorf("device %q already exists", name)
		}

		dc := config.DeviceConfig{Name: name, Kind: kind, Model: model}
		if cmd.Flags().Changed("connection") {
			ct, err := device.ParseConnectionType(addConnection)
			if err != nil {
				return err
			}
			dc.Connection = ct
		}
		if cmd.Flags().Changed("ink") {
			dc.InkLevel = &addInk
		}
		if cmd.Flags().Changed("resolution") {
			dc.ScanResolution = &addResolution
		}
		// Reject bounds now rather than on the next run.
		if _, err := device.New(dc.Spec()); err != nil {
			return err
		}

		cfg.Devices = append(cfg.Devices, dc)
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Added device: %s (%s %s)\n", name, kind, model)
		return nil
	},
}

var configRemoveDeviceCmd = &cobra.Command{
	Use:   "remove-device <name>",
	Short: "Remove a device from the fleet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if !cfg.Remove(name) {
			return fmt.Errorf("device %q not found", name)
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Removed device: %s\n", name)
		return nil
	},
}

var configSetConnectionCmd = &cobra.Command{
	Use:   "set-connection <name> <type>",
	Short: "Set the default connection type of a device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		ct, err := device.ParseConnectionType(args[1])
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dc, ok := cfg.Find(name)
		if !ok {
			return fmt.Errorf("device %q not found", name)
		}
		dc.Connection = ct
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Set connection for %s: %s\n", name, ct)
		return nil
	},
}

var configJournalCmd = &cobra.Command{
	Use:   "journal <on|off>",
	Short: "Enable or disable the outcome journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[0] {
		case "on":
			enabled = true
		case "off":
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.Journal.Enabled = enabled
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Journal %s\n", args[0])
		return nil
	},
}

func init() {
	configAddDeviceCmd.Flags().StringVar(&addConnection, "connection", "", "Connection type (default depends on kind)")
	configAddDeviceCmd.Flags().IntVar(&addInk, "ink", device.MaxInkLevel, "Initial ink level in percent")
	configAddDeviceCmd.Flags().IntVar(&addResolution, "resolution", 0, "Scan resolution in dpi")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configAddDeviceCmd)
	configCmd.AddCommand(configRemoveDeviceCmd)
	configCmd.AddCommand(configSetConnectionCmd)
	configCmd.AddCommand(configJournalCmd)
	rootCmd.AddCommand(configCmd)
}
