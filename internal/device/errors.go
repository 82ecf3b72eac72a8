package device

import "errors"

// Construction errors. A device is never returned alongside one of these.
var (
	ErrEmptyModel               = errors.New("model must not be empty")
	ErrInkLevelOutOfRange       = errors.New("ink level out of range")
	ErrScanResolutionOutOfRange = errors.New("scan resolution out of range")
	ErrUnknownConnectionType    = errors.New("unknown connection type")
	ErrUnknownKind              = errors.New("unknown device kind")
)

// Decline reasons, surfaced through Outcome.Err.
var (
	ErrNotConnected     = errors.New("device not connected")
	ErrEmptyDocument    = errors.New("document is empty")
	ErrOutOfInk         = errors.New("out of ink")
	ErrRefillOutOfRange = errors.New("refill amount out of range")
	ErrRefillOverflow   = errors.New("refill would exceed maximum ink level")
)
