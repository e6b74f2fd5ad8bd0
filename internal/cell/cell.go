// Package cell holds a single heap-allocated value behind a type-erased
// handle. The owner can release the value without knowing its concrete type.
package cell

// Releaser is implemented by payloads that own resources and need teardown
// when the cell holding them is released. Both value and pointer receivers
// are honoured.
type Releaser interface {
	Release()
}

// Cell owns exactly one value. The concrete type is fixed when the cell is
// built; changing it means releasing this cell and building another.
type Cell struct {
	data    any        // *T
	load    func() any // returns *data as any
	release func()     // teardown bound to the concrete type
}

// New allocates a cell holding the value returned by build. A nil build
// stores the zero value of T.
func New[T any](build func() T) *Cell {
	ptr := new(T)
	if build != nil {
		*ptr = build()
	}
	c := &Cell{
		data: ptr,
		load: func() any { return *ptr },
	}
	if r, ok := any(ptr).(Releaser); ok {
		c.release = r.Release
	}
	return c
}

// View returns the payload typed as T. It reports false if the payload is
// not a T or the cell has been released.
func View[T any](c *Cell) (*T, bool) {
	if c == nil {
		return nil, false
	}
	ptr, ok := c.data.(*T)
	return ptr, ok
}

// Value returns a copy of the payload as any, or nil once released.
func (c *Cell) Value() any {
	if c == nil || c.data == nil {
		return nil
	}
	return c.load()
}

// Release runs the payload's teardown hook, if it has one, and detaches the
// payload from the cell. Idempotent; safe on a nil cell.
func (c *Cell) Release() {
	if c == nil || c.data == nil {
		return
	}
	if c.release != nil {
		c.release()
	}
	c.data = nil
	c.load = nil
	c.release = nil
}

// Released reports whether the payload has been released.
func (c *Cell) Released() bool {
	return c == nil || c.data == nil
}
