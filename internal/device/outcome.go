package device

import "strings"

// Status tells whether an operation changed the device or declined to.
type Status string

const (
	Applied  Status = "applied"
	Declined Status = "declined"
)

// Reason names the guard that declined an operation.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotConnected     Reason = "not_connected"
	ReasonEmptyDocument    Reason = "empty_document"
	ReasonOutOfInk         Reason = "out_of_ink"
	ReasonRefillOutOfRange Reason = "refill_out_of_range"
	ReasonRefillOverflow   Reason = "refill_overflow"
)

var reasonErrors = map[Reason]error{
	ReasonNotConnected:     ErrNotConnected,
	ReasonEmptyDocument:    ErrEmptyDocument,
	ReasonOutOfInk:         ErrOutOfInk,
	ReasonRefillOutOfRange: ErrRefillOutOfRange,
	ReasonRefillOverflow:   ErrRefillOverflow,
}

// Operation names a device operation.
type Operation string

const (
	OpConnect    Operation = "connect"
	OpDisconnect Operation = "disconnect"
	OpPrint      Operation = "print"
	OpRefill     Operation = "refill"
	OpScan       Operation = "scan"
)

// Outcome is the result of a device operation. Messages holds the status
// lines in the order the device reported them.
type Outcome struct {
	Op       Operation
	Status   Status
	Reason   Reason
	Messages []string
}

// Applied returns true if the operation took effect.
func (o Outcome) Applied() bool {
	return o.Status == Applied
}

// Err returns the sentinel for a declined outcome, or nil if it was applied.
func (o Outcome) Err() error {
	if o.Status != Declined {
		return nil
	}
	return reasonErrors[o.Reason]
}

// String joins the status lines.
func (o Outcome) String() string {
	return strings.Join(o.Messages, "\n")
}

func applied(op Operation, msgs ...string) Outcome {
	return Outcome{Op: op, Status: Applied, Messages: msgs}
}

func declined(op Operation, reason Reason, msgs ...string) Outcome {
	return Outcome{Op: op, Status: Declined, Reason: reason, Messages: msgs}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
