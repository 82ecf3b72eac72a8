package session

import (
	"fmt"

	"github.com/FluidXR/peripheral/internal/config"
	"github.com/FluidXR/peripheral/internal/device"
)

// Fleet is a set of named devices.
type Fleet struct {
	order   []string
	devices map[string]device.Device
}

// NewFleet returns an empty fleet.
func NewFleet() *Fleet {
	return &Fleet{devices: make(map[string]device.Device)}
}

// BuildFleet constructs every configured device. The first construction
// failure aborts the build.
func BuildFleet(entries []config.DeviceConfig) (*Fleet, error) {
	f := NewFleet()
	for _, dc := range entries {
		d, err := device.New(dc.Spec())
		if err != nil {
			return nil, fmt.Errorf("device %q: %w", dc.Name, err)
		}
		if err := f.Add(dc.Name, d); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Add registers d under name.
func (f *Fleet) Add(name string, d device.Device) error {
	if _, exists := f.devices[name]; exists {
		return fmt.Errorf("device %q already in fleet", name)
	}
	f.devices[name] = d
	f.order = append(f.order, name)
	return nil
}

// Get returns the named device.
func (f *Fleet) Get(name string) (device.Device, bool) {
	d, ok := f.devices[name]
	return d, ok
}

// Names returns device names in the order they were added.
func (f *Fleet) Names() []string {
	return append([]string(nil), f.order...)
}

// Len returns the number of devices.
func (f *Fleet) Len() int {
	return len(f.order)
}
