package device

import "fmt"

// DefaultPrinterConnection is used when a printer spec names no connection.
const DefaultPrinterConnection = Ethernet

// Printer is a connectable device that prints.
type Printer struct {
	base
	ink cartridge
}

// NewPrinter creates a disconnected printer with the given ink level.
func NewPrinter(model string, inkLevel int, conn ConnectionType) (*Printer, error) {
	if err := checkIdentity(KindPrinter, model, conn); err != nil {
		return nil, err
	}
	if err := checkInkLevel(inkLevel); err != nil {
		return nil, fmt.Errorf("printer %s: %w", model, err)
	}
	return &Printer{
		base: base{kind: KindPrinter, model: model, conn: conn},
		ink:  cartridge{level: inkLevel},
	}, nil
}

// InkLevel returns the current ink level in percent.
func (p *Printer) InkLevel() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ink.level
}

// Print consumes InkPerPrint ink if the printer is connected and has ink left.
func (p *Printer) Print(document string) Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ink.print(&p.base, document)
}

// RefillInk adds amount percent of ink. A printer can be refilled while disconnected.
func (p *Printer) RefillInk(amount int) Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ink.refill(&p.base, amount)
}

func (p *Printer) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("%s - Connection: %s - Ink level: %d%%", p.name(), p.linkState(), p.ink.level)
}
