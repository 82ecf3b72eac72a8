package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FluidXR/peripheral/internal/device"
)

// Op is a step operation.
type Op string

const (
	OpConnect       Op = "connect"
	OpDisconnect    Op = "disconnect"
	OpPrint         Op = "print"
	OpScan          Op = "scan"
	OpRefill        Op = "refill"
	OpStatus        Op = "status"
	OpSetConnection Op = "set-connection"
	OpSetResolution Op = "set-resolution"
)

// Step is a single operation against a named device.
type Step struct {
	Device string
	Op     Op
	Arg    string
}

func (s Step) String() string {
	if s.Arg == "" {
		return fmt.Sprintf("%s %s", s.Device, s.Op)
	}
	return fmt.Sprintf("%s %s:%s", s.Device, s.Op, s.Arg)
}

// ParseStep parses "op[:arg]" for the named device. Print and scan keep
// their argument verbatim so that blank documents reach the device guards.
func ParseStep(deviceName, s string) (Step, error) {
	op, arg, _ := strings.Cut(s, ":")
	step := Step{Device: deviceName, Op: Op(strings.ToLower(strings.TrimSpace(op))), Arg: arg}
	if err := step.validate(); err != nil {
		return Step{}, err
	}
	return step, nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpConnect, OpDisconnect, OpStatus, OpPrint, OpScan:
		return nil
	case OpRefill, OpSetResolution:
		_, err := s.intArg()
		return err
	case OpSetConnection:
		_, err := device.ParseConnectionType(s.Arg)
		return err
	}
	return fmt.Errorf("unknown operation %q", s.Op)
}

func (s Step) intArg() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s.Arg))
	if err != nil {
		return 0, fmt.Errorf("%s needs a number, got %q", s.Op, s.Arg)
	}
	return n, nil
}
