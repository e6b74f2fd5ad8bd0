package script

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/quick/pkg/debugstream"
	"github.com/mesh-intelligence/quick/pkg/variant"
)

// Demo is the catalog scenarios run against.
type Demo = variant.Of3[int64, string, uuid.UUID]

var demo Demo

// Result records the outcome of one step.
type Result struct {
	Step        int    // 1-based step number
	Op          string // operation name
	Index       int    // requested index, -1 when the op takes none
	Active      int    // active index after the step
	Initialized bool   // whether the variant holds a value after the step
	Value       string // value read by get, otherwise the held value
	Err         error  // read failure reported by get
}

// DebugStream writes the result fields.
func (r Result) DebugStream(s *debugstream.Stream) {
	s.Write("step: ").Write(r.Step).Write(", op: ").Write(r.Op)
	if r.Index >= 0 {
		s.Write(", index: ").Write(r.Index)
	}
	s.Write(",\nactive: ").Write(r.Active).Write(", initialized: ").Write(r.Initialized)
	if r.Value != "" {
		s.Write(",\nvalue: ").Write(r.Value)
	}
	if r.Err != nil {
		s.Write(",\nerror: ").Write(r.Err.Error())
	}
}

// Runner executes steps against one variant. State carries over between
// Run calls until Reset.
type Runner struct {
	logger *slog.Logger
	v      *variant.Variant[Demo]
}

// NewRunner returns a runner with an empty variant.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger, v: variant.New[Demo]()}
}

// Variant exposes the variant the runner drives.
func (r *Runner) Variant() *variant.Variant[Demo] {
	return r.v
}

// Reset clears the variant.
func (r *Runner) Reset() {
	r.v.Clear()
}

// Run executes the steps of doc in order. It stops at the first invalid step
// or failed expectation and returns the results gathered so far.
func (r *Runner) Run(doc Document) ([]Result, error) {
	r.logger.Debug("scenario start", "name", doc.Name, "steps", len(doc.Steps))
	results := make([]Result, 0, len(doc.Steps))
	for i, step := range doc.Steps {
		res, err := r.step(i+1, step)
		results = append(results, res)
		if err != nil {
			r.logger.Debug("scenario stopped", "name", doc.Name, "step", i+1, "error", err)
			return results, err
		}
	}
	r.logger.Debug("scenario done", "name", doc.Name)
	return results, nil
}

func (r *Runner) step(n int, step Step) (Result, error) {
	res := Result{Step: n, Op: step.Op, Index: -1}
	if step.Index != nil {
		res.Index = *step.Index
	}

	var read any
	switch step.Op {
	case OpAt:
		if err := r.at(step); err != nil {
			return r.finish(res, nil), fmt.Errorf("step %d: %w", n, err)
		}
	case OpGet:
		if step.Index == nil {
			return r.finish(res, nil), fmt.Errorf("step %d: %w: get needs an index", n, ErrInvalidStep)
		}
		x, err := r.get(*step.Index)
		if err != nil && !isAccessError(err) {
			return r.finish(res, nil), fmt.Errorf("step %d: %w", n, err)
		}
		res.Err = err
		read = x
	case OpClear:
		r.v.Clear()
	case OpState:
	default:
		return r.finish(res, nil), fmt.Errorf("step %d: %w: unknown op %q", n, ErrInvalidStep, step.Op)
	}

	res = r.finish(res, read)
	r.logger.Debug("step", "n", n, "op", step.Op, "index", res.Index,
		"active", res.Active, "value", res.Value, "error", res.Err)

	if res.Err != nil && !step.ExpectError {
		return res, fmt.Errorf("step %d: %w: unexpected error: %w", n, ErrExpectation, res.Err)
	}
	if step.ExpectError && res.Err == nil {
		return res, fmt.Errorf("step %d: %w: expected an error", n, ErrExpectation)
	}
	if step.ExpectValue != nil && *step.ExpectValue != res.Value {
		return res, fmt.Errorf("step %d: %w: value %q, want %q", n, ErrExpectation, res.Value, *step.ExpectValue)
	}
	return res, nil
}

// finish fills in the variant state. read is the value returned by get; for
// other ops the held value is reported.
func (r *Runner) finish(res Result, read any) Result {
	res.Active = r.v.Active()
	res.Initialized = r.v.Initialized()
	switch {
	case read != nil:
		res.Value = render(read)
	case res.Op != OpGet:
		if x, ok := r.v.Value(); ok {
			res.Value = render(x)
		}
	}
	return res
}

func (r *Runner) at(step Step) error {
	if step.Index == nil {
		return fmt.Errorf("%w: at needs an index", ErrInvalidStep)
	}
	switch *step.Index {
	case 0:
		n, err := strconv.ParseInt(step.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: index 0 holds int64: %w", ErrInvalidStep, err)
		}
		variant.At(r.v, demo.I0(), n)
	case 1:
		variant.At(r.v, demo.I1(), step.Value)
	case 2:
		if step.Value == "" {
			variant.Emplace(r.v, demo.I2(), uuid.New)
			return nil
		}
		id, err := uuid.Parse(step.Value)
		if err != nil {
			return fmt.Errorf("%w: index 2 holds uuid: %w", ErrInvalidStep, err)
		}
		variant.At(r.v, demo.I2(), id)
	default:
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidStep, *step.Index, demo.Len())
	}
	return nil
}

func (r *Runner) get(index int) (any, error) {
	switch index {
	case 0:
		n, err := variant.Get(r.v, demo.I0())
		if err != nil {
			return nil, err
		}
		return n, nil
	case 1:
		s, err := variant.Get(r.v, demo.I1())
		if err != nil {
			return nil, err
		}
		return s, nil
	case 2:
		id, err := variant.Get(r.v, demo.I2())
		if err != nil {
			return nil, err
		}
		return id, nil
	}
	return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidStep, index, demo.Len())
}

func isAccessError(err error) bool {
	return errors.Is(err, variant.ErrInvalidAccess)
}

func render(x any) string {
	return debugstream.Sprint(x, debugstream.WithInline(true))
}
