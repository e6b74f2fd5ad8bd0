// Package variant provides a single-slot, type-safe tagged union.
//
// A catalog type such as Of2[int, string] declares the alternatives once.
// Its I0, I1, ... methods return typed indices, so both the position and the
// concrete type of an access are checked by the compiler:
//
//	type Shape = variant.Of2[int, string]
//	var shape Shape
//
//	var v variant.Variant[Shape]
//	variant.At(&v, shape.I1(), "hello") // Holding(1)
//	s, err := variant.Get(&v, shape.I1()) // "hello", nil
//	_, err = variant.Get(&v, shape.I0())  // ErrInvalidAccess
//
// Emplace and At are get-or-construct: when the requested index is already
// active the existing value is returned and the new constructor or value is
// ignored. Assign through the returned pointer to overwrite it.
//
// A Variant is not safe for concurrent use.
package variant
