package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FluidXR/peripheral/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(PathEnv, "")
	return dir
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Devices, 3)
	assert.True(t, cfg.Journal.Enabled)

	officejet, ok := cfg.Find("officejet")
	require.True(t, ok)
	assert.Equal(t, device.KindPrinterScanner, officejet.Kind)
	assert.Equal(t, 1200, *officejet.ScanResolution)
}

func TestSaveThenLoad(t *testing.T) {
	dir := useTempConfig(t)

	cfg := DefaultConfig()
	cfg.Devices = append(cfg.Devices, DeviceConfig{Name: "label", Kind: device.KindPrinter, Model: "Brother QL", Connection: device.USB})
	require.NoError(t, Save(cfg))
	assert.FileExists(t, filepath.Join(dir, "peripheral", "config.yaml"))

	loaded, err := Load()
	require.NoError(t, err)
	label, ok := loaded.Find("label")
	require.True(t, ok)
	assert.Equal(t, device.USB, label.Connection)
	assert.Nil(t, label.InkLevel)
}

func TestLoadParsesConnectionCaseInsensitively(t *testing.T) {
	dir := useTempConfig(t)
	path := filepath.Join(dir, "fleet.yaml")
	t.Setenv(PathEnv, path)

	data := []byte(`devices:
  - name: mfp
    kind: printer-scanner
    model: Canon Pixma
    connection: Bluetooth
    ink_level: 30
journal:
  enabled: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Devices, 1)
	assert.Equal(t, device.Bluetooth, cfg.Devices[0].Connection)
	assert.False(t, cfg.Journal.Enabled)

	spec := cfg.Devices[0].Spec()
	assert.Equal(t, 30, *spec.InkLevel)
	assert.Nil(t, spec.ScanResolution)
}

func TestLoadRejectsUnknownConnection(t *testing.T) {
	dir := useTempConfig(t)
	path := filepath.Join(dir, "fleet.yaml")
	t.Setenv(PathEnv, path)
	require.NoError(t, os.WriteFile(path, []byte("devices:\n  - {name: x, kind: printer, model: X, connection: serial}\n"), 0o644))

	_, err := Load()
	assert.ErrorIs(t, err, device.ErrUnknownConnectionType)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		devices []DeviceConfig
		wantErr string
	}{
		{"missing name", []DeviceConfig{{Kind: device.KindPrinter, Model: "P"}}, "name is required"},
		{"duplicate", []DeviceConfig{
			{Name: "a", Kind: device.KindPrinter, Model: "P"},
			{Name: "a", Kind: device.KindScanner, Model: "S"},
		}, "defined twice"},
		{"bad kind", []DeviceConfig{{Name: "a", Kind: "fax", Model: "F"}}, "unknown device kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{Devices: tt.devices}).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}

func TestRemove(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Remove("epson"))
	assert.False(t, cfg.Remove("epson"))
	_, ok := cfg.Find("epson")
	assert.False(t, ok)
	assert.Len(t, cfg.Devices, 2)
}

func TestJournalDir(t *testing.T) {
	dir := useTempConfig(t)
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(dir, "peripheral"), cfg.JournalDir())

	cfg.Journal.Dir = "/var/lib/peripheral"
	assert.Equal(t, "/var/lib/peripheral", cfg.JournalDir())
}
