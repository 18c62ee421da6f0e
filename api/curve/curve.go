package curve

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// ErrInvalidParameters is returned by New when the supplied components do not
// describe a usable curve.
var ErrInvalidParameters = errors.New("invalid EC domain parameters")

// Point is an affine point given by its coordinates.
type Point struct {
	X, Y *big.Int
}

// DomainParameters is the immutable description of an elliptic curve.
type DomainParameters struct {
	name     string
	field    Field
	a, b     *big.Int
	gx, gy   *big.Int
	order    *big.Int
	cofactor int
}

// New validates the components and returns DomainParameters holding private
// copies of them. name is informational and may be empty.
func New(name string, field Field, a, b *big.Int, generator Point, order *big.Int, cofactor int) (*DomainParameters, error) {
	if err := validateField(field); err != nil {
		return nil, err
	}
	for label, v := range map[string]*big.Int{"a": a, "b": b, "generator x": generator.X, "generator y": generator.Y} {
		if v == nil || v.Sign() < 0 {
			return nil, errors.Wrapf(ErrInvalidParameters, "%s must be a non-negative integer", label)
		}
	}
	if order == nil || order.Cmp(big.NewInt(1)) <= 0 {
		return nil, errors.Wrap(ErrInvalidParameters, "order must be greater than 1")
	}
	if cofactor < 1 {
		return nil, errors.Wrapf(ErrInvalidParameters, "cofactor %d", cofactor)
	}

	return &DomainParameters{
		name:     name,
		field:    field.clone(),
		a:        new(big.Int).Set(a),
		b:        new(big.Int).Set(b),
		gx:       new(big.Int).Set(generator.X),
		gy:       new(big.Int).Set(generator.Y),
		order:    new(big.Int).Set(order),
		cofactor: cofactor,
	}, nil
}

func validateField(field Field) error {
	switch f := field.(type) {
	case PrimeField:
		if f.P == nil || f.P.Cmp(big.NewInt(2)) <= 0 {
			return errors.Wrap(ErrInvalidParameters, "prime modulus must be greater than 2")
		}
	case BinaryField:
		if f.M < 1 || f.ReductionPolynomial == nil || f.ReductionPolynomial.BitLen() != f.M+1 {
			return errors.Wrapf(ErrInvalidParameters, "reduction polynomial does not match degree %d", f.M)
		}
	default:
		return errors.Wrapf(ErrInvalidParameters, "unsupported field type %T", field)
	}
	return nil
}

// Name returns the curve's name, or "" for unnamed curves.
func (p *DomainParameters) Name() string { return p.name }

// Field returns a copy of the underlying field.
func (p *DomainParameters) Field() Field { return p.field.clone() }

// A returns the coefficient a.
func (p *DomainParameters) A() *big.Int { return new(big.Int).Set(p.a) }

// B returns the coefficient b.
func (p *DomainParameters) B() *big.Int { return new(big.Int).Set(p.b) }

// Generator returns the base point.
func (p *DomainParameters) Generator() Point {
	return Point{X: new(big.Int).Set(p.gx), Y: new(big.Int).Set(p.gy)}
}

// Order returns the order n of the generator.
func (p *DomainParameters) Order() *big.Int { return new(big.Int).Set(p.order) }

// Cofactor returns the cofactor h.
func (p *DomainParameters) Cofactor() int { return p.cofactor }

// OrderLen returns ceil(bitlen(n)/8), the width of a fixed-length scalar.
func (p *DomainParameters) OrderLen() int { return (p.order.BitLen() + 7) / 8 }

// IsBinary reports whether the curve is defined over a binary field.
func (p *DomainParameters) IsBinary() bool {
	_, ok := p.field.(BinaryField)
	return ok
}

// Equal reports whether p and other describe the same curve. Names are ignored.
func (p *DomainParameters) Equal(other *DomainParameters) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.cofactor != other.cofactor ||
		p.a.Cmp(other.a) != 0 || p.b.Cmp(other.b) != 0 ||
		p.gx.Cmp(other.gx) != 0 || p.gy.Cmp(other.gy) != 0 ||
		p.order.Cmp(other.order) != 0 {
		return false
	}
	switch f := p.field.(type) {
	case PrimeField:
		g, ok := other.field.(PrimeField)
		return ok && f.P.Cmp(g.P) == 0
	case BinaryField:
		g, ok := other.field.(BinaryField)
		return ok && f.M == g.M && f.ReductionPolynomial.Cmp(g.ReductionPolynomial) == 0
	}
	return false
}

// String returns a human friendly identifier (implements fmt.Stringer).
func (p *DomainParameters) String() string {
	if p == nil {
		return "<nil curve>"
	}
	if p.name != "" {
		return p.name
	}
	kind := "prime"
	if p.IsBinary() {
		kind = "binary"
	}
	return fmt.Sprintf("unnamed %s curve (%d-bit order)", kind, p.order.BitLen())
}
