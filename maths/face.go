package maths

import (
	"errors"
	"math"
	"math/cmplx"
)

// Number is the set of scalar types the vector-algebra layer accepts.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// ErrDimensionMismatch is the panic value used when a vector-algebra
// operation is given an argument of the wrong length. Mismatched lengths are
// a programming fault, not a recoverable runtime condition, so this is
// panicked rather than returned; it is still a proper error value so a
// caller that recovers can match the cause with errors.Is.
var ErrDimensionMismatch = errors.New("maths: vector dimension mismatch")

// abs returns the absolute value (or modulus) of v for any supported Number type.
func abs[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// conj returns the complex conjugate of v, or v unchanged for real T.
func conj[T Number](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(x)))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v
	}
}

// DataManager is the one-dimensional storage core shared by Vector and the
// Leja/Newton-coefficient arrays: get/set, zeroing, and doubling growth.
type DataManager[T Number] interface {
	Length() int
	String() string

	Get(index int) T
	Set(index int, value T)

	DataPtr() []T

	Zero()

	// Grow ensures the backing storage can hold at least n elements,
	// doubling capacity and zero-filling the newly exposed tail when it
	// must reallocate. It never shrinks.
	Grow(n int)

	Copy(target DataManager[T])
}

// Vector is a fixed-length, dense sequence of scalars supporting the
// algebra primitives the Arnoldi/Leja/Newton machinery is built from.
//
// Inner is conjugate-linear in the receiver and linear in the argument:
// x.Inner(y) == sum(conj(x_i) * y_i). Mixing that convention up silently
// transposes every Hessenberg matrix built on top of it.
type Vector[T Number] interface {
	Length() int
	String() string

	Get(index int) T
	Set(index int, value T)

	// Copy overwrites dst with the receiver's values. Panics on length mismatch.
	Copy(dst Vector[T])
	// Zero sets every element to the zero value.
	Zero()
	// Scale multiplies every element by alpha in place.
	Scale(alpha T)
	// AXPY performs y <- y + alpha*x where y is the receiver.
	AXPY(alpha T, x Vector[T])
	// Inner returns sum(conj(receiver_i) * other_i).
	Inner(other Vector[T]) T
	// Norm returns the Euclidean (2-) norm of the receiver.
	Norm() float64
}
