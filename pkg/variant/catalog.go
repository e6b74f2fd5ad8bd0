package variant

import "strconv"

// Catalog is satisfied by the OfN catalog types. Len reports how many
// alternatives the catalog declares.
type Catalog interface {
	Len() int
}

// Index is a position in catalog C bound to its concrete type T. Indices are
// obtained from the catalog's I0, I1, ... methods; a position past the end
// of the catalog has no method and does not compile. The zero Index is not a
// valid position.
type Index[C, T any] struct {
	slot int // position + 1
}

func index[C, T any](pos int) Index[C, T] {
	return Index[C, T]{slot: pos + 1}
}

// Pos returns the 0-based catalog position, or -1 for the zero Index.
func (i Index[C, T]) Pos() int {
	return i.slot - 1
}

func (i Index[C, T]) String() string {
	if i.slot == 0 {
		return "index(invalid)"
	}
	return "index(" + strconv.Itoa(i.Pos()) + ")"
}

// Of1 is a catalog with a single alternative.
type Of1[T0 any] struct{}

func (Of1[T0]) Len() int { return 1 }

func (Of1[T0]) I0() Index[Of1[T0], T0] { return index[Of1[T0], T0](0) }

// Of2 is a catalog of two alternatives. T0 is at position 0 and T1 at
// position 1; the same pattern holds for the larger catalogs.
type Of2[T0, T1 any] struct{}

func (Of2[T0, T1]) Len() int { return 2 }

func (Of2[T0, T1]) I0() Index[Of2[T0, T1], T0] { return index[Of2[T0, T1], T0](0) }
func (Of2[T0, T1]) I1() Index[Of2[T0, T1], T1] { return index[Of2[T0, T1], T1](1) }

// Of3 is a catalog of three alternatives.
type Of3[T0, T1, T2 any] struct{}

func (Of3[T0, T1, T2]) Len() int { return 3 }

func (Of3[T0, T1, T2]) I0() Index[Of3[T0, T1, T2], T0] { return index[Of3[T0, T1, T2], T0](0) }
func (Of3[T0, T1, T2]) I1() Index[Of3[T0, T1, T2], T1] { return index[Of3[T0, T1, T2], T1](1) }
func (Of3[T0, T1, T2]) I2() Index[Of3[T0, T1, T2], T2] { return index[Of3[T0, T1, T2], T2](2) }

// Of4 is a catalog of four alternatives.
type Of4[T0, T1, T2, T3 any] struct{}

func (Of4[T0, T1, T2, T3]) Len() int { return 4 }

func (Of4[T0, T1, T2, T3]) I0() Index[Of4[T0, T1, T2, T3], T0] { return index[Of4[T0, T1, T2, T3], T0](0) }
func (Of4[T0, T1, T2, T3]) I1() Index[Of4[T0, T1, T2, T3], T1] { return index[Of4[T0, T1, T2, T3], T1](1) }
func (Of4[T0, T1, T2, T3]) I2() Index[Of4[T0, T1, T2, T3], T2] { return index[Of4[T0, T1, T2, T3], T2](2) }
func (Of4[T0, T1, T2, T3]) I3() Index[Of4[T0, T1, T2, T3], T3] { return index[Of4[T0, T1, T2, T3], T3](3) }

// Of5 is a catalog of five alternatives.
type Of5[T0, T1, T2, T3, T4 any] struct{}

func (Of5[T0, T1, T2, T3, T4]) Len() int { return 5 }

func (Of5[T0, T1, T2, T3, T4]) I0() Index[Of5[T0, T1, T2, T3, T4], T0] { return index[Of5[T0, T1, T2, T3, T4], T0](0) }
func (Of5[T0, T1, T2, T3, T4]) I1() Index[Of5[T0, T1, T2, T3, T4], T1] { return index[Of5[T0, T1, T2, T3, T4], T1](1) }
func (Of5[T0, T1, T2, T3, T4]) I2() Index[Of5[T0, T1, T2, T3, T4], T2] { return index[Of5[T0, T1, T2, T3, T4], T2](2) }
func (Of5[T0, T1, T2, T3, T4]) I3() Index[Of5[T0, T1, T2, T3, T4], T3] { return index[Of5[T0, T1, T2, T3, T4], T3](3) }
func (Of5[T0, T1, T2, T3, T4]) I4() Index[Of5[T0, T1, T2, T3, T4], T4] { return index[Of5[T0, T1, T2, T3, T4], T4](4) }

// Of6 is a catalog of six alternatives.
type Of6[T0, T1, T2, T3, T4, T5 any] struct{}

func (Of6[T0, T1, T2, T3, T4, T5]) Len() int { return 6 }

func (Of6[T0, T1, T2, T3, T4, T5]) I0() Index[Of6[T0, T1, T2, T3, T4, T5], T0] { return index[Of6[T0, T1, T2, T3, T4, T5], T0](0) }
func (Of6[T0, T1, T2, T3, T4, T5]) I1() Index[Of6[T0, T1, T2, T3, T4, T5], T1] { return index[Of6[T0, T1, T2, T3, T4, T5], T1](1) }
func (Of6[T0, T1, T2, T3, T4, T5]) I2() Index[Of6[T0, T1, T2, T3, T4, T5], T2] { return index[Of6[T0, T1, T2, T3, T4, T5], T2](2) }
func (Of6[T0, T1, T2, T3, T4, T5]) I3() Index[Of6[T0, T1, T2, T3, T4, T5], T3] { return index[Of6[T0, T1, T2, T3, T4, T5], T3](3) }
func (Of6[T0, T1, T2, T3, T4, T5]) I4() Index[Of6[T0, T1, T2, T3, T4, T5], T4] { return index[Of6[T0, T1, T2, T3, T4, T5], T4](4) }
func (Of6[T0, T1, T2, T3, T4, T5]) I5() Index[Of6[T0, T1, T2, T3, T4, T5], T5] { return index[Of6[T0, T1, T2, T3, T4, T5], T5](5) }

// Of7 is a catalog of seven alternatives.
type Of7[T0, T1, T2, T3, T4, T5, T6 any] struct{}

func (Of7[T0, T1, T2, T3, T4, T5, T6]) Len() int { return 7 }

func (Of7[T0, T1, T2, T3, T4, T5, T6]) I0() Index[Of7[T0, T1, T2, T3, T4, T5, T6], T0] { return index[Of7[T0, T1, T2, T3, T4, T5, T6], T0](0) }
func (Of7[T0, T1, T2, T3, T4, T5, T6]) I1() Index[Of7[T0, T1, T2, T3, T4, T5, T6], T1] { return index[Of7[T0, T1, T2, T3, T4, T5, T6], T1](1) }
func (Of7[T0, T1, T2, T3, T4, T5, T6]) I2() Index[Of7[T0, T1, T2, T3, T4, T5, T6], T2] { return index[Of7[T0, T1, T2, T3, T4, T5, T6], T2](2) }
func (Of7[T0, T1, T2, T3, T4, T5, T6]) I3() Index[Of7[T0, T1, T2, T3, T4, T5, T6], T3] { return index[Of7[T0, T1, T2, T3, T4, T5, T6], T3](3) }
func (Of7[T0, T1, T2, T3, T4, T5, T6]) I4() Index[Of7[T0, T1, T2, T3, T4, T5, T6], T4] { return index[Of7[T0, T1, T2, T3, T4, T5, T6], T4](4) }
func (Of7[T0, T1, T2, T3, T4, T5, T6]) I5() Index[Of7[T0, T1, T2, T3, T4, T5, T6], T5] { return index[Of7[T0, T1, T2, T3, T4, T5, T6], T5](5) }
func (Of7[T0, T1, T2, T3, T4, T5, T6]) I6() Index[Of7[T0, T1, T2, T3, T4, T5, T6], T6] { return index[Of7[T0, T1, T2, T3, T4, T5, T6], T6](6) }

// Of8 is a catalog of eight alternatives.
type Of8[T0, T1, T2, T3, T4, T5, T6, T7 any] struct{}

func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) Len() int { return 8 }

func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) I0() Index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T0] { return index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T0](0) }
func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) I1() Index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T1] { return index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T1](1) }
func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) I2() Index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T2] { return index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T2](2) }
func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) I3() Index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T3] { return index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T3](3) }
func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) I4() Index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T4] { return index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T4](4) }
func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) I5() Index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T5] { return index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T5](5) }
func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) I6() Index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T6] { return index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T6](6) }
func (Of8[T0, T1, T2, T3, T4, T5, T6, T7]) I7() Index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T7] { return index[Of8[T0, T1, T2, T3, T4, T5, T6, T7], T7](7) }
