package device

import "fmt"

// DefaultScannerConnection is used when a scanner spec names no connection.
const DefaultScannerConnection = Ethernet

// Scanner is a connectable device that scans.
type Scanner struct {
	base
	head scanHead
}

// NewScanner creates a disconnected scanner at the given resolution.
func NewScanner(model string, resolution int, conn ConnectionType) (*Scanner, error) {
	if err := checkIdentity(KindScanner, model, conn); err != nil {
		return nil, err
	}
	if err := checkScanResolution(resolution); err != nil {
		return nil, fmt.Errorf("scanner %s: %w", model, err)
	}
	return &Scanner{
		base: base{kind: KindScanner, model: model, conn: conn},
		head: scanHead{resolution: resolution},
	}, nil
}

// ScanResolution returns the resolution in dpi.
func (s *Scanner) ScanResolution() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.head.resolution
}

// SetScanResolution changes the resolution. Out-of-range values are rejected.
func (s *Scanner) SetScanResolution(dpi int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.head.setResolution(dpi)
}

// Scan reports a scan of document. It never changes the device.
func (s *Scanner) Scan(document string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.head.scan(&s.base, document)
}

func (s *Scanner) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("%s - Connection: %s - Resolution: %d dpi", s.name(), s.linkState(), s.head.resolution)
}
