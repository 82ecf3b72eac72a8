package device

import "fmt"

// Ink levels are percentages.
const (
	MaxInkLevel       = 100
	MinInkLevel       = 0
	LowInkThreshold   = 10
	EmptyInkThreshold = 5
	InkPerPrint       = 5
)

// Printable is implemented by devices that print documents.
type Printable interface {
	InkLevel() int
	Print(document string) Outcome
	RefillInk(amount int) Outcome
}

func checkInkLevel(level int) error {
	if level < MinInkLevel || level > MaxInkLevel {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInkLevelOutOfRange, level, MinInkLevel, MaxInkLevel)
	}
	return nil
}

// cartridge carries the ink rules. Methods expect the owner's lock to be held.
type cartridge struct {
	level int
	// refillNeedsLink makes RefillInk decline while disconnected.
	refillNeedsLink bool
}

func (c *cartridge) print(b *base, document string) Outcome {
	if !b.connected {
		return b.notConnected(OpPrint)
	}
	if blank(document) {
		return declined(OpPrint, ReasonEmptyDocument, "The document to print must not be empty")
	}
	if c.level <= EmptyInkThreshold {
		return declined(OpPrint, ReasonOutOfInk,
			fmt.Sprintf("%s is out of ink. Current level: %d%%", b.name(), c.level))
	}

	var msgs []string
	if c.level <= LowInkThreshold {
		msgs = append(msgs, fmt.Sprintf("Warning: low ink level (%d%%). Refill soon.", c.level))
	}
	c.level -= InkPerPrint
	msgs = append(msgs, fmt.Sprintf("Printing '%s'... Ink remaining: %d%%", document, c.level))
	return applied(OpPrint, msgs...)
}

func (c *cartridge) refill(b *base, amount int) Outcome {
	if c.refillNeedsLink && !b.connected {
		return b.notConnected(OpRefill)
	}
	if amount < MinInkLevel || amount > MaxInkLevel {
		return declined(OpRefill, ReasonRefillOutOfRange,
			fmt.Sprintf("Refill amount must be between %d and %d", MinInkLevel, MaxInkLevel))
	}
	if c.level+amount > MaxInkLevel {
		return declined(OpRefill, ReasonRefillOverflow,
			fmt.Sprintf("Cannot add %d%%. Maximum level is %d%%. Current level: %d%%", amount, MaxInkLevel, c.level))
	}
	c.level += amount
	return applied(OpRefill, fmt.Sprintf("Refill complete. New ink level: %d%%", c.level))
}
