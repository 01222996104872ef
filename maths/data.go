package maths

import "fmt"

// dataManager is the common slice-backed implementation of DataManager.
type dataManager[T Number] struct {
	data []T
}

// NewDataManager creates a DataManager of the given length, zero-filled.
func NewDataManager[T Number](length int) DataManager[T] {
	return &dataManager[T]{data: make([]T, length)}
}

// NewDataManagerWithData wraps an existing slice without copying it.
func NewDataManagerWithData[T Number](data []T) DataManager[T] {
	return &dataManager[T]{data: data}
}

func (dm *dataManager[T]) Length() int { return len(dm.data) }

func (dm *dataManager[T]) String() string { return fmt.Sprintf("%v", dm.data) }

func (dm *dataManager[T]) Get(index int) T { return dm.data[index] }

func (dm *dataManager[T]) Set(index int, value T) { dm.data[index] = value }

// DataPtr returns the backing slice directly; mutating it mutates dm.
func (dm *dataManager[T]) DataPtr() []T { return dm.data }

func (dm *dataManager[T]) Zero() {
	var zero T
	for i := range dm.data {
		dm.data[i] = zero
	}
}

// Grow doubles the backing storage to 2*n when n exceeds the current
// length, zero-filling the newly exposed tail, and leaves it untouched
// otherwise. This is the growth policy the Leja sequence and Newton
// coefficient arrays rely on to keep extension amortized O(1).
func (dm *dataManager[T]) Grow(n int) {
	if n <= len(dm.data) {
		return
	}
	grown := make([]T, 2*n)
	copy(grown, dm.data)
	dm.data = grown
}

func (dm *dataManager[T]) Copy(target DataManager[T]) {
	if dm.Length() != target.Length() {
		panic("dataManager.Copy: length mismatch")
	}
	if targetDm, ok := target.(*dataManager[T]); ok {
		copy(targetDm.data, dm.data)
		return
	}
	for i := 0; i < dm.Length(); i++ {
		target.Set(i, dm.Get(i))
	}
}
