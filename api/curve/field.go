package curve

import "math/big"

// Field is the underlying field of a curve. It is implemented only by
// PrimeField and BinaryField; consumers dispatch with a type switch.
type Field interface {
	// FieldSize returns the size of the field in bits.
	FieldSize() int

	clone() Field
	field()
}

// PrimeField is the field of integers modulo the prime P.
type PrimeField struct {
	P *big.Int
}

func (f PrimeField) FieldSize() int { return f.P.BitLen() }

func (f PrimeField) clone() Field { return PrimeField{P: new(big.Int).Set(f.P)} }

func (PrimeField) field() {}

// BinaryField is the characteristic-two field GF(2^M). ReductionPolynomial
// holds the full polynomial as a bit string, including the x^M term.
type BinaryField struct {
	M                   int
	ReductionPolynomial *big.Int
}

func (f BinaryField) FieldSize() int { return f.M }

func (f BinaryField) clone() Field {
	return BinaryField{M: f.M, ReductionPolynomial: new(big.Int).Set(f.ReductionPolynomial)}
}

func (BinaryField) field() {}

var (
	_ Field = PrimeField{}
	_ Field = BinaryField{}
)
