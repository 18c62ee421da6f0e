// Package curve describes the elliptic curves that EC private keys are bound to.
//
// A curve is captured by its DomainParameters: the underlying field, the
// coefficients a and b, the generator point, the group order and the cofactor.
// The field is a small closed sum type:
//
//   - PrimeField carries the prime modulus p
//   - BinaryField carries the extension degree m and the reduction polynomial
//
// DomainParameters values are immutable once constructed and are safe to share
// between goroutines and keys. Accessors return copies, so callers can never
// reach the internal big integers.
//
// # Quick start
//
//	params := curve.Secp256k1()
//	fmt.Println(params, params.OrderLen()) // secp256k1 32
//
// Custom curves are built with New, which validates and copies its inputs.
//
// The package performs no curve arithmetic. Point validation and key-pair
// derivation belong to the engine behind a key's native handle.
package curve
