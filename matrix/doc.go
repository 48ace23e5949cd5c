// Package matrix provides the dense numeric storage and numeric policy used to
// assemble linear-program constraint systems.
//
// What:
//
//   - Dense: row-major float64 matrix with bounds-checked Set, row
//     extraction and matrix-vector product. Zero-row matrices are legal, since
//     an LP may carry no equality (or no inequality) constraints.
//   - Tolerance: the numpy-style "isclose" policy |a−b| ≤ Abs + Rel·|b| shared by
//     every component that must decide whether a solved quantity is zero.
//
// Numeric policy:
//
//   - Set rejects NaN and ±Inf with ErrNaNInf.
//   - Indexers return ErrOutOfRange; nothing panics on user input.
//
// Complexity:
//
//	NewDense O(r·c) · Set O(1) · Row O(c) · MulVec O(r·c)
package matrix
