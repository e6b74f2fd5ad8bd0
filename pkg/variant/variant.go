package variant

import (
	"fmt"

	"github.com/mesh-intelligence/quick/internal/cell"
)

// Releaser is implemented by payloads that need teardown when the variant
// releases them: on a switch to another index and on Clear.
type Releaser = cell.Releaser

// Variant holds at most one value of one of the alternatives of catalog C.
// The zero value is empty and ready to use. A Variant must not be copied
// after first use; go vet reports copies. A copy whose shared payload was
// released by the original reads as empty.
type Variant[C Catalog] struct {
	_      noCopy
	cell   *cell.Cell
	active int
}

// noCopy lets the copylocks check in go vet flag copied variants.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// live reports whether the variant holds an unreleased payload.
func (v *Variant[C]) live() bool {
	return !v.cell.Released()
}

// New returns an empty variant.
func New[C Catalog]() *Variant[C] {
	return &Variant[C]{}
}

// Len returns the number of alternatives in the catalog. It doubles as the
// sentinel Active reports for an empty variant.
func (v *Variant[C]) Len() int {
	var c C
	return c.Len()
}

// Active returns the position of the live alternative, or Len() when the
// variant is empty.
func (v *Variant[C]) Active() int {
	if !v.live() {
		return v.Len()
	}
	return v.active
}

// Initialized reports whether the variant holds a value.
func (v *Variant[C]) Initialized() bool {
	return v.live()
}

// Clear releases the held value, if any, and leaves the variant empty.
// Idempotent.
func (v *Variant[C]) Clear() {
	if v.cell == nil {
		return
	}
	c := v.cell
	v.cell = nil
	v.active = v.Len()
	c.Release()
}

// Value returns the live payload for callers that do not know its index
// statically. It reports false when the variant is empty.
func (v *Variant[C]) Value() (any, bool) {
	if !v.live() {
		return nil, false
	}
	return v.cell.Value(), true
}

func (v *Variant[C]) String() string {
	if !v.live() {
		return "variant(empty)"
	}
	return fmt.Sprintf("variant(%d: %v)", v.active, v.cell.Value())
}

// Emplace returns a pointer to the value at index i, constructing it with
// build when i is not the active index. The previous value, if any, is
// released before build runs; if build panics the variant is left empty.
// A nil build constructs the zero value.
//
// When i is already active the existing value is returned unchanged and
// build is not called. Repeated calls are cheap and never reset the value,
// which can surprise callers expecting a reset: assign through the returned
// pointer to replace the value.
//
// The pointer is valid until the next switch or Clear; do not retain it
// across one. Emplace panics for the zero Index.
func Emplace[C Catalog, T any](v *Variant[C], i Index[C, T], build func() T) *T {
	pos := i.Pos()
	if pos < 0 {
		panic("variant: Emplace with zero Index")
	}
	if !v.live() || v.active != pos {
		v.Clear()
		v.cell = cell.New(build)
		v.active = pos
	}
	ptr, ok := cell.View[T](v.cell)
	if !ok {
		panic(fmt.Sprintf("variant: payload at index %d has the wrong type %T", pos, v.cell.Value()))
	}
	return ptr
}

// At is Emplace with a ready-made value. The value is ignored when i is
// already active.
func At[C Catalog, T any](v *Variant[C], i Index[C, T], value T) *T {
	return Emplace(v, i, func() T { return value })
}

// Get returns a copy of the value at index i. It never constructs: it
// returns an error wrapping ErrInvalidAccess unless i is the active index.
func Get[C Catalog, T any](v *Variant[C], i Index[C, T]) (T, error) {
	var zero T
	if !Holds(v, i) {
		return zero, fmt.Errorf("%w: requested %d, active %d", ErrInvalidAccess, i.Pos(), v.Active())
	}
	ptr, ok := cell.View[T](v.cell)
	if !ok {
		return zero, fmt.Errorf("%w: payload at index %d is %T", ErrInvalidAccess, i.Pos(), v.cell.Value())
	}
	return *ptr, nil
}

// Holds reports whether i is the active index.
func Holds[C Catalog, T any](v *Variant[C], i Index[C, T]) bool {
	pos := i.Pos()
	return pos >= 0 && v.live() && v.active == pos
}
