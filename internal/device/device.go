package device

import (
	"fmt"
	"strings"
	"sync"
)

// Kind identifies one of the supported device variants.
type Kind string

const (
	KindPrinter        Kind = "printer"
	KindScanner        Kind = "scanner"
	KindPrinterScanner Kind = "printer-scanner"
)

// Valid reports whether k is a supported device kind.
func (k Kind) Valid() bool {
	switch k {
	case KindPrinter, KindScanner, KindPrinterScanner:
		return true
	}
	return false
}

// ParseKind parses a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// label is the noun used in status lines.
func (k Kind) label() string {
	switch k {
	case KindPrinter:
		return "Printer"
	case KindScanner:
		return "Scanner"
	case KindPrinterScanner:
		return "Multifunction device"
	}
	return "Device"
}

// Device is the common surface of every peripheral.
type Device interface {
	Connectable
	fmt.Stringer
	Kind() Kind
	Model() string
}

// Spec describes a device to construct. Zero values select the kind's defaults.
type Spec struct {
	Kind           Kind
	Model          string
	Connection     ConnectionType
	InkLevel       *int
	ScanResolution *int
}

// New builds the device described by spec.
func New(spec Spec) (Device, error) {
	switch spec.Kind {
	case KindPrinter:
		p, err := NewPrinter(spec.Model,
			valueOr(spec.InkLevel, MaxInkLevel),
			connOr(spec.Connection, DefaultPrinterConnection))
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindScanner:
		s, err := NewScanner(spec.Model,
			valueOr(spec.ScanResolution, MinScanResolution),
			connOr(spec.Connection, DefaultScannerConnection))
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindPrinterScanner:
		ps, err := NewPrinterScanner(spec.Model,
			connOr(spec.Connection, DefaultPrinterScannerConnection),
			valueOr(spec.InkLevel, MaxInkLevel),
			valueOr(spec.ScanResolution, DefaultPrinterScannerResolution))
		if err != nil {
			return nil, err
		}
		return ps, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func connOr(ct, def ConnectionType) ConnectionType {
	if ct == "" {
		return def
	}
	return ct
}

// base holds the identity and link state shared by all variants.
// Its mutex also guards the capability state of the embedding device.
type base struct {
	mu        sync.Mutex
	kind      Kind
	model     string
	conn      ConnectionType
	connected bool
}

func checkIdentity(kind Kind, model string, conn ConnectionType) error {
	if blank(model) {
		return fmt.Errorf("%s: %w", kind, ErrEmptyModel)
	}
	if !conn.Valid() {
		return fmt.Errorf("%s %s: %w: %q", kind, model, ErrUnknownConnectionType, conn)
	}
	return nil
}

// Kind returns the device variant.
func (b *base) Kind() Kind {
	return b.kind
}

// Model returns the model name given at construction.
func (b *base) Model() string {
	return b.model
}

// IsConnected returns true between Connect and Disconnect.
func (b *base) IsConnected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connected
}

// ConnectionType returns the current connection type.
func (b *base) ConnectionType() ConnectionType {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn
}

// SetConnectionType changes the connection type, even while connected.
func (b *base) SetConnectionType(ct ConnectionType) error {
	if !ct.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownConnectionType, ct)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conn = ct
	return nil
}

// Connect marks the device connected. Calling it twice only repeats the report.
func (b *base) Connect() Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connected = true
	return applied(OpConnect, fmt.Sprintf("%s connected via %s", b.name(), b.conn))
}

// Disconnect marks the device disconnected.
func (b *base) Disconnect() Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connected = false
	return applied(OpDisconnect, fmt.Sprintf("%s disconnected", b.name()))
}

func (b *base) name() string {
	return b.kind.label() + " " + b.model
}

// linkState renders the connection part of a status line. Caller holds mu.
func (b *base) linkState() string {
	state := "disconnected"
	if b.connected {
		state = "connected"
	}
	return fmt.Sprintf("%s (%s)", b.conn, state)
}

// notConnected is the decline every guarded operation shares. Caller holds mu.
func (b *base) notConnected(op Operation) Outcome {
	return declined(op, ReasonNotConnected,
		fmt.Sprintf("%s is not connected, connect it first", b.name()))
}
