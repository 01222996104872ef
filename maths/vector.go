package maths

import "math"

// denseVector is the dense Vector[T] implementation used throughout the
// Krylov basis, the Newton-basis scratch rows, and the restart seed.
type denseVector[T Number] struct {
	DataManager[T]
}

// NewVector creates a new zero vector of the given length.
func NewVector[T Number](length int) Vector[T] {
	return &denseVector[T]{DataManager: NewDataManager[T](length)}
}

// NewVectorWithData wraps an existing slice as a Vector without copying it.
func NewVectorWithData[T Number](data []T) Vector[T] {
	return &denseVector[T]{DataManager: NewDataManagerWithData[T](data)}
}

func (v *denseVector[T]) Length() int { return v.DataManager.Length() }

func (v *denseVector[T]) Get(index int) T { return v.DataManager.Get(index) }

func (v *denseVector[T]) Set(index int, value T) { v.DataManager.Set(index, value) }

func (v *denseVector[T]) Zero() { v.DataManager.Zero() }

// Copy overwrites dst with the receiver's values.
func (v *denseVector[T]) Copy(dst Vector[T]) {
	if dst.Length() != v.Length() {
		panic(ErrDimensionMismatch)
	}
	if target, ok := dst.(*denseVector[T]); ok {
		v.DataManager.Copy(target.DataManager)
		return
	}
	for i := 0; i < v.Length(); i++ {
		dst.Set(i, v.Get(i))
	}
}

// Scale multiplies every element by alpha in place.
func (v *denseVector[T]) Scale(alpha T) {
	for i := 0; i < v.Length(); i++ {
		v.Set(i, v.Get(i)*alpha)
	}
}

// AXPY performs v <- v + alpha*x.
func (v *denseVector[T]) AXPY(alpha T, x Vector[T]) {
	if x.Length() != v.Length() {
		panic(ErrDimensionMismatch)
	}
	for i := 0; i < v.Length(); i++ {
		v.Set(i, v.Get(i)+alpha*x.Get(i))
	}
}

// Inner returns sum(conj(v_i) * other_i): conjugate-linear in the receiver,
// linear in other. See the Vector doc comment for why this convention must
// not be flipped.
func (v *denseVector[T]) Inner(other Vector[T]) T {
	if other.Length() != v.Length() {
		panic(ErrDimensionMismatch)
	}
	var sum T
	for i := 0; i < v.Length(); i++ {
		sum += conj(v.Get(i)) * other.Get(i)
	}
	return sum
}

// Norm returns the Euclidean 2-norm of the receiver.
func (v *denseVector[T]) Norm() float64 {
	var sumSq float64
	for i := 0; i < v.Length(); i++ {
		a := abs(v.Get(i))
		sumSq += a * a
	}
	return math.Sqrt(sumSq)
}
