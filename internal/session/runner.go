package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/FluidXR/peripheral/internal/device"
	"github.com/FluidXR/peripheral/internal/journal"
)

// Runner executes steps against a fleet, writing status lines to Out and
// recording outcomes in Journal when one is set.
type Runner struct {
	Fleet   *Fleet
	Journal *journal.DB
	Logger  *slog.Logger
	Out     io.Writer
	RunID   string
}

// Result summarizes a run.
type Result struct {
	RunID    string
	Applied  int
	Declined int
	Outcomes []device.Outcome
	Errors   []string
}

// Scene is a titled group of steps.
type Scene struct {
	Title string
	Steps []Step
}

// Run executes steps in order. A failing step is recorded in Result.Errors
// and the run moves on.
func (r *Runner) Run(steps []Step) Result {
	r.defaults()
	result := Result{RunID: r.RunID}
	for _, step := range steps {
		r.runStep(step, &result)
	}
	return result
}

// RunScenes executes each scene under a heading.
func (r *Runner) RunScenes(scenes []Scene) Result {
	r.defaults()
	result := Result{RunID: r.RunID}
	for i, scene := range scenes {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		fmt.Fprintf(r.Out, "=== %s ===\n", scene.Title)
		for _, step := range scene.Steps {
			r.runStep(step, &result)
		}
	}
	return result
}

func (r *Runner) defaults() {
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
	if r.Out == nil {
		r.Out = io.Discard
	}
}

func (r *Runner) runStep(step Step, result *Result) {
	r.Logger.Debug("step", "run", r.RunID, "device", step.Device, "op", step.Op, "arg", step.Arg)

	d, ok := r.Fleet.Get(step.Device)
	if !ok {
		r.fail(result, step, fmt.Errorf("unknown device %q", step.Device))
		return
	}
	o, isOutcome, err := r.exec(d, step)
	if err != nil {
		r.fail(result, step, err)
		return
	}
	if !isOutcome {
		return
	}

	for _, line := range o.Messages {
		fmt.Fprintln(r.Out, line)
	}
	result.Outcomes = append(result.Outcomes, o)
	if o.Applied() {
		result.Applied++
	} else {
		result.Declined++
		r.Logger.Info("declined", "device", step.Device, "op", o.Op, "reason", o.Reason)
	}

	if r.Journal != nil {
		if _, err := r.Journal.Record(r.RunID, step.Device, d.Kind(), o); err != nil {
			r.Logger.Warn("journal write failed", "device", step.Device, "err", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", step, err))
		}
	}
}

// exec dispatches a step through the capability interfaces. The bool is
// false for steps that report without producing an outcome.
func (r *Runner) exec(d device.Device, step Step) (device.Outcome, bool, error) {
	if err := step.validate(); err != nil {
		return device.Outcome{}, false, err
	}
	switch step.Op {
	case OpConnect:
		return d.Connect(), true, nil
	case OpDisconnect:
		return d.Disconnect(), true, nil
	case OpStatus:
		fmt.Fprintln(r.Out, d.String())
		return device.Outcome{}, false, nil
	case OpSetConnection:
		ct, _ := device.ParseConnectionType(step.Arg)
		if err := d.SetConnectionType(ct); err != nil {
			return device.Outcome{}, false, err
		}
		fmt.Fprintf(r.Out, "%s connection set to %s\n", step.Device, ct)
		return device.Outcome{}, false, nil
	case OpPrint, OpRefill:
		p, ok := d.(device.Printable)
		if !ok {
			return device.Outcome{}, false, fmt.Errorf("%s %q cannot print", d.Kind(), step.Device)
		}
		if step.Op == OpPrint {
			return p.Print(step.Arg), true, nil
		}
		amount, _ := step.intArg()
		return p.RefillInk(amount), true, nil
	case OpScan, OpSetResolution:
		s, ok := d.(device.Scannable)
		if !ok {
			return device.Outcome{}, false, fmt.Errorf("%s %q cannot scan", d.Kind(), step.Device)
		}
		if step.Op == OpScan {
			return s.Scan(step.Arg), true, nil
		}
		dpi, _ := step.intArg()
		if err := s.SetScanResolution(dpi); err != nil {
			return device.Outcome{}, false, err
		}
		fmt.Fprintf(r.Out, "%s resolution set to %d dpi\n", step.Device, dpi)
		return device.Outcome{}, false, nil
	}
	return device.Outcome{}, false, fmt.Errorf("unknown operation %q", step.Op)
}

func (r *Runner) fail(result *Result, step Step, err error) {
	r.Logger.Warn("step failed", "step", step.String(), "err", err)
	result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", step, err))
}
