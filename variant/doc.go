// Package variant provides the dynamically-typed value representation used
// at the host engine boundary.
//
// Typed signal handles marshal their statically-typed arguments into
// variants before handing them to the engine's emit primitive, and foreign
// callables convert them back at dispatch time:
//
//	v := variant.New(42)
//	n, err := variant.To[int](v)
//
// Conversion is strict: exact type matches and numeric-to-numeric
// conversions succeed, everything else reports a structured type mismatch.
package variant
