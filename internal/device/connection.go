package device

import (
	"fmt"
	"strings"
)

// ConnectionType indicates how a device is attached.
type ConnectionType string

const (
	Ethernet  ConnectionType = "ethernet"
	WiFi      ConnectionType = "wifi"
	Bluetooth ConnectionType = "bluetooth"
	USB       ConnectionType = "usb"
)

// ConnectionTypes lists every supported connection type.
var ConnectionTypes = []ConnectionType{Ethernet, WiFi, Bluetooth, USB}

// Valid reports whether ct is one of the supported connection types.
func (ct ConnectionType) Valid() bool {
	switch ct {
	case Ethernet, WiFi, Bluetooth, USB:
		return true
	}
	return false
}

// ParseConnectionType parses a connection type name, case-insensitively.
func ParseConnectionType(s string) (ConnectionType, error) {
	ct := ConnectionType(strings.ToLower(strings.TrimSpace(s)))
	if !ct.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownConnectionType, s)
	}
	return ct, nil
}

// UnmarshalYAML lets config files spell connection types in any case.
func (ct *ConnectionType) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseConnectionType(s)
	if err != nil {
		return err
	}
	*ct = parsed
	return nil
}

// Connectable is implemented by every device that can be attached and detached.
type Connectable interface {
	IsConnected() bool
	ConnectionType() ConnectionType
	SetConnectionType(ct ConnectionType) error
	Connect() Outcome
	Disconnect() Outcome
}
