package device

import "fmt"

// PrinterScanner defaults differ from the single-function devices.
const (
	DefaultPrinterScannerConnection = WiFi
	DefaultPrinterScannerResolution = 600
)

// PrinterScanner is a multifunction device. Unlike Printer it must be
// connected to accept an ink refill.
type PrinterScanner struct {
	base
	ink  cartridge
	head scanHead
}

// NewPrinterScanner creates a disconnected multifunction device.
func NewPrinterScanner(model string, conn ConnectionType, inkLevel, resolution int) (*PrinterScanner, error) {
	if err := checkIdentity(KindPrinterScanner, model, conn); err != nil {
		return nil, err
	}
	if err := checkInkLevel(inkLevel); err != nil {
		return nil, fmt.Errorf("printer-scanner %s: %w", model, err)
	}
	if err := checkScanResolution(resolution); err != nil {
		return nil, fmt.Errorf("printer-scanner %s: %w", model, err)
	}
	return &PrinterScanner{
		base: base{kind: KindPrinterScanner, model: model, conn: conn},
		ink:  cartridge{level: inkLevel, refillNeedsLink: true},
		head: scanHead{resolution: resolution},
	}, nil
}

// InkLevel returns the current ink level in percent.
func (ps *PrinterScanner) InkLevel() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.ink.level
}

// Print consumes InkPerPrint ink if the device is connected and has ink left.
func (ps *PrinterScanner) Print(document string) Outcome {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.ink.print(&ps.base, document)
}

// RefillInk adds amount percent of ink.
func (ps *PrinterScanner) RefillInk(amount int) Outcome {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.ink.refill(&ps.base, amount)
}

// ScanResolution returns the resolution in dpi.
func (ps *PrinterScanner) ScanResolution() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.head.resolution
}

// SetScanResolution changes the resolution. Out-of-range values are rejected.
func (ps *PrinterScanner) SetScanResolution(dpi int) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.head.setResolution(dpi)
}

// Scan reports a scan of document. It never changes the device.
func (ps *PrinterScanner) Scan(document string) Outcome {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.head.scan(&ps.base, document)
}

func (ps *PrinterScanner) String() string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return fmt.Sprintf("%s - Connection: %s - Ink level: %d%% - Resolution: %d dpi",
		ps.name(), ps.linkState(), ps.ink.level, ps.head.resolution)
}
