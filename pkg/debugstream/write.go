package debugstream

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Pair renders as a two-element branch in parentheses.
type Pair[K, V any] struct {
	First  K
	Second V
}

// MakePair builds a Pair.
func MakePair[K, V any](first K, second V) Pair[K, V] {
	return Pair[K, V]{First: first, Second: second}
}

func (p Pair[K, V]) elements() (any, any) { return p.First, p.Second }

type pair interface {
	elements() (any, any)
}

// Write renders v and returns the stream for chaining.
func (s *Stream) Write(v any) *Stream {
	switch x := v.(type) {
	case nil:
		s.WriteString("nil")
	case Formatter:
		s.BranchStart('{')
		x.DebugStream(s)
		s.BranchEnd('}')
	case pair:
		first, second := x.elements()
		s.BranchStart('(')
		s.Write(first)
		s.WriteString(", ")
		s.Write(second)
		s.BranchEnd(')')
	case string:
		s.WriteString(x)
	case fmt.Stringer:
		s.WriteString(x.String())
	default:
		rv := reflect.ValueOf(v)
		if ptr, ok := pointerFormatter(rv); ok {
			s.Write(ptr)
			return s
		}
		s.writeValue(rv)
	}
	return s
}

func (s *Stream) writeValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Bool:
		s.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if isEnum(rv.Type()) {
			s.WriteString("ENUM-")
		}
		s.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if isEnum(rv.Type()) {
			s.WriteString("ENUM-")
		}
		s.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		s.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 32))
	case reflect.Float64:
		s.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	case reflect.String:
		s.WriteString(rv.String())
	case reflect.Slice, reflect.Array:
		s.writeList(rv)
	case reflect.Map:
		s.writeMap(rv)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			s.WriteString("nil")
			return
		}
		s.writeElem(rv.Elem())
	default:
		s.WriteString(fmt.Sprint(rv))
	}
}

// writeElem renders a nested value, giving its own Formatter, Pair or
// Stringer implementation a chance first.
func (s *Stream) writeElem(rv reflect.Value) {
	if ptr, ok := pointerFormatter(rv); ok {
		s.Write(ptr)
		return
	}
	if rv.CanInterface() {
		s.Write(rv.Interface())
		return
	}
	s.writeValue(rv)
}

var formatterType = reflect.TypeFor[Formatter]()

// pointerFormatter returns a pointer to rv when only *T implements
// Formatter. Non-addressable values, such as map entries, are copied first.
func pointerFormatter(rv reflect.Value) (any, bool) {
	if !rv.IsValid() || !rv.CanInterface() || rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		return nil, false
	}
	if rv.Type().Implements(formatterType) || !reflect.PointerTo(rv.Type()).Implements(formatterType) {
		return nil, false
	}
	if rv.CanAddr() {
		return rv.Addr().Interface(), true
	}
	dup := reflect.New(rv.Type())
	dup.Elem().Set(rv)
	return dup.Interface(), true
}

// isEnum reports whether t is a named integer type declared outside the
// standard builtins, which is how Go spells an enumeration.
func isEnum(t reflect.Type) bool {
	return t.PkgPath() != ""
}

func (s *Stream) writeList(rv reflect.Value) {
	if rv.Len() == 0 {
		s.WriteString("[]")
		return
	}
	s.BranchStart('[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			s.WriteString(", ")
		}
		s.writeElem(rv.Index(i))
	}
	s.BranchEnd(']')
}

func (s *Stream) writeMap(rv reflect.Value) {
	if rv.Len() == 0 {
		s.WriteString("{}")
		return
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })

	s.BranchStart('{')
	for i, k := range keys {
		if i > 0 {
			_ = s.WriteByte(',')
			if !s.Inline {
				_ = s.WriteByte('\n')
			}
		}
		restore := s.ScopedInline(true)
		s.writeElem(k)
		restore()
		s.WriteString(": ")
		s.writeElem(rv.MapIndex(k))
	}
	s.BranchEnd('}')
}

// lessKey orders map keys so output is deterministic.
func lessKey(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
