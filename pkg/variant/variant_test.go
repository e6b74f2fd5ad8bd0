package variant

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intText = Of2[int, string]

var it intText

// resource counts how many times it has been released.
type resource struct {
	id       int
	released *int
}

func (r *resource) Release() { *r.released++ }

type resourceCatalog = Of3[resource, string, []int]

var rc resourceCatalog

func TestZeroVariantIsEmpty(t *testing.T) {
	var v Variant[intText]

	assert.False(t, v.Initialized())
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 2, v.Active(), "empty variant reports the sentinel")
	_, ok := v.Value()
	assert.False(t, ok)
	assert.Equal(t, "variant(empty)", v.String())
}

func TestEmplaceSetsActiveIndex(t *testing.T) {
	tests := []struct {
		name   string
		access func(v *Variant[intText])
		want   int
	}{
		{"index 0", func(v *Variant[intText]) { At(v, it.I0(), 5) }, 0},
		{"index 1", func(v *Variant[intText]) { At(v, it.I1(), "five") }, 1},
		{"index 0 zero value", func(v *Variant[intText]) { Emplace(v, it.I0(), nil) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New[intText]()
			tt.access(v)
			assert.Equal(t, tt.want, v.Active())
			assert.True(t, v.Initialized())
		})
	}
}

func TestSameIndexReusesValue(t *testing.T) {
	v := New[intText]()

	first := At(v, it.I0(), 5)
	second := At(v, it.I0(), 9)

	assert.Equal(t, 5, *second, "second get-or-construct must not rebuild")
	assert.Same(t, first, second)

	calls := 0
	Emplace(v, it.I0(), func() int { calls++; return 11 })
	assert.Zero(t, calls, "constructor must not run when the index is active")

	got, err := Get(v, it.I0())
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestAssignThroughPointer(t *testing.T) {
	v := New[intText]()
	*At(v, it.I1(), "a") = "b"

	got, err := Get(v, it.I1())
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestSwitchReleasesPrevious(t *testing.T) {
	released := 0
	v := New[resourceCatalog]()

	At(v, rc.I0(), resource{id: 1, released: &released})
	At(v, rc.I0(), resource{id: 2, released: &released})
	assert.Zero(t, released, "same index must not release")

	At(v, rc.I1(), "text")
	assert.Equal(t, 1, released)
	assert.Equal(t, 1, v.Active())

	At(v, rc.I2(), []int{1, 2})
	assert.Equal(t, 1, released, "payload without hook releases silently")

	At(v, rc.I0(), resource{id: 3, released: &released})
	v.Clear()
	assert.Equal(t, 2, released)
	v.Clear()
	assert.Equal(t, 2, released, "Clear is idempotent")
}

func TestSwitchReleasesBeforeBuild(t *testing.T) {
	released := 0
	v := New[resourceCatalog]()
	At(v, rc.I0(), resource{released: &released})

	Emplace(v, rc.I1(), func() string {
		assert.Equal(t, 1, released, "previous payload released before build")
		assert.False(t, v.Initialized())
		return "next"
	})
	assert.Equal(t, 1, v.Active())
}

func TestPanickingBuildLeavesEmpty(t *testing.T) {
	v := New[intText]()
	At(v, it.I0(), 1)

	assert.Panics(t, func() {
		Emplace(v, it.I1(), func() string { panic("boom") })
	})
	assert.False(t, v.Initialized())
	assert.Equal(t, v.Len(), v.Active())
}

func TestGetOnEmpty(t *testing.T) {
	v := New[intText]()

	_, err := Get(v, it.I0())
	assert.True(t, errors.Is(err, ErrInvalidAccess))
	_, err = Get(v, it.I1())
	assert.True(t, errors.Is(err, ErrInvalidAccess))
	assert.False(t, v.Initialized(), "strict read never constructs")
}

func TestGetAfterEmplace(t *testing.T) {
	v := New[intText]()
	At(v, it.I0(), 42)

	got, err := Get(v, it.I0())
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = Get(v, it.I1())
	require.ErrorIs(t, err, ErrInvalidAccess)
	assert.Contains(t, err.Error(), "requested 1, active 0")
	assert.Equal(t, 0, v.Active(), "failed read leaves state alone")
}

func TestGetReturnsCopy(t *testing.T) {
	type point struct{ X, Y int }
	var cat Of1[point]
	v := New[Of1[point]]()
	At(v, cat.I0(), point{1, 2})

	got, err := Get(v, cat.I0())
	require.NoError(t, err)
	got.X = 100

	again, err := Get(v, cat.I0())
	require.NoError(t, err)
	assert.Equal(t, point{1, 2}, again)
}

func TestClear(t *testing.T) {
	t.Run("from holding", func(t *testing.T) {
		v := New[intText]()
		At(v, it.I1(), "x")
		v.Clear()

		assert.False(t, v.Initialized())
		assert.Equal(t, 2, v.Active())
		_, err := Get(v, it.I0())
		assert.ErrorIs(t, err, ErrInvalidAccess)
		_, err = Get(v, it.I1())
		assert.ErrorIs(t, err, ErrInvalidAccess)
	})

	t.Run("from empty", func(t *testing.T) {
		v := New[intText]()
		v.Clear()
		assert.False(t, v.Initialized())
		assert.Equal(t, 2, v.Active())
	})

	t.Run("reusable after clear", func(t *testing.T) {
		v := New[intText]()
		At(v, it.I0(), 1)
		v.Clear()
		At(v, it.I0(), 2)
		got, err := Get(v, it.I0())
		require.NoError(t, err)
		assert.Equal(t, 2, got, "clear forgets the old value")
	})
}

// shallowCopy copies v field by field, sharing its cell.
func shallowCopy[C Catalog](v *Variant[C]) *Variant[C] {
	dup := new(Variant[C])
	reflect.ValueOf(dup).Elem().Set(reflect.ValueOf(v).Elem())
	return dup
}

func TestStaleCopyReadsEmpty(t *testing.T) {
	a := New[intText]()
	At(a, it.I0(), 5)
	b := shallowCopy(a)
	a.Clear()

	assert.False(t, b.Initialized())
	assert.Equal(t, 2, b.Active())
	assert.False(t, Holds(b, it.I0()))
	_, ok := b.Value()
	assert.False(t, ok)
	assert.Equal(t, "variant(empty)", b.String())
	_, err := Get(b, it.I0())
	assert.ErrorIs(t, err, ErrInvalidAccess)

	require.NotPanics(t, func() { At(b, it.I0(), 9) })
	got, err := Get(b, it.I0())
	require.NoError(t, err)
	assert.Equal(t, 9, got, "stale copy rebuilds")
	assert.False(t, a.Initialized(), "rebuilding the copy leaves the original empty")
}

func TestStaleCopyAfterSwitch(t *testing.T) {
	released := 0
	a := New[resourceCatalog]()
	Emplace(a, rc.I0(), func() resource { return resource{id: 1, released: &released} })
	b := shallowCopy(a)
	At(a, rc.I1(), "switched")
	require.Equal(t, 1, released)

	assert.False(t, b.Initialized())
	b.Clear()
	assert.Equal(t, 1, released, "clearing a stale copy releases nothing")
	got, err := Get(a, rc.I1())
	require.NoError(t, err)
	assert.Equal(t, "switched", got)
}

func TestRoundTrip(t *testing.T) {
	want := []string{"a", "b"}
	var cat Of2[[]string, int]
	v := New[Of2[[]string, int]]()
	At(v, cat.I0(), want)

	got, err := Get(v, cat.I0())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestIntTextScenario(t *testing.T) {
	released := 0
	type text struct {
		resource
		s string
	}
	var cat Of2[int, text]
	v := New[Of2[int, text]]()

	At(v, cat.I1(), text{resource: resource{released: &released}, s: "hello"})
	assert.Equal(t, 1, v.Active())

	got, err := Get(v, cat.I1())
	require.NoError(t, err)
	assert.Equal(t, "hello", got.s)

	_, err = Get(v, cat.I0())
	assert.ErrorIs(t, err, ErrInvalidAccess)

	At(v, cat.I0(), 42)
	assert.Equal(t, 0, v.Active())
	assert.Equal(t, 1, released, "text payload released on switch")

	_, err = Get(v, cat.I1())
	assert.ErrorIs(t, err, ErrInvalidAccess)
}

func TestHolds(t *testing.T) {
	v := New[intText]()
	assert.False(t, Holds(v, it.I0()))

	At(v, it.I0(), 1)
	assert.True(t, Holds(v, it.I0()))
	assert.False(t, Holds(v, it.I1()))
}

func TestZeroIndex(t *testing.T) {
	v := New[intText]()
	var zero Index[intText, string]

	assert.Equal(t, -1, zero.Pos())
	assert.Equal(t, "index(invalid)", zero.String())
	assert.PanicsWithValue(t, "variant: Emplace with zero Index", func() {
		Emplace(v, zero, nil)
	})

	At(v, it.I0(), 1)
	assert.False(t, Holds(v, zero))
	_, err := Get(v, zero)
	assert.ErrorIs(t, err, ErrInvalidAccess)
}

func TestValueAndString(t *testing.T) {
	v := New[intText]()
	At(v, it.I1(), "hello")

	got, ok := v.Value()
	require.True(t, ok)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "variant(1: hello)", v.String())
}

func TestCatalogPositions(t *testing.T) {
	var c Of8[int, int8, int16, int32, int64, uint, string, bool]

	assert.Equal(t, 8, c.Len())
	positions := []int{
		c.I0().Pos(), c.I1().Pos(), c.I2().Pos(), c.I3().Pos(),
		c.I4().Pos(), c.I5().Pos(), c.I6().Pos(), c.I7().Pos(),
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, positions)
	assert.Equal(t, "index(3)", c.I3().String())

	assert.Equal(t, 1, Of1[int]{}.Len())
	assert.Equal(t, 4, Of4[int, int, int, int]{}.Len())
}
