package device

import "fmt"

// Scan resolutions are in dpi.
const (
	MinScanResolution = 100
	MaxScanResolution = 1200
)

// Scannable is implemented by devices that scan documents.
type Scannable interface {
	ScanResolution() int
	SetScanResolution(dpi int) error
	Scan(document string) Outcome
}

func checkScanResolution(dpi int) error {
	if dpi < MinScanResolution || dpi > MaxScanResolution {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrScanResolutionOutOfRange, dpi, MinScanResolution, MaxScanResolution)
	}
	return nil
}

// scanHead carries the scan rules. Methods expect the owner's lock to be held.
type scanHead struct {
	resolution int
}

func (h *scanHead) scan(b *base, document string) Outcome {
	if !b.connected {
		return b.notConnected(OpScan)
	}
	if blank(document) {
		return declined(OpScan, ReasonEmptyDocument, "The document to scan must not be empty")
	}
	return applied(OpScan, fmt.Sprintf("Scanning '%s'... Resolution: %d dpi", document, h.resolution))
}

func (h *scanHead) setResolution(dpi int) error {
	if err := checkScanResolution(dpi); err != nil {
		return err
	}
	h.resolution = dpi
	return nil
}
