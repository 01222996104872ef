package leja

import "propagator/maths"

// growTo doubles *buf to 2*target (zero-filling the new tail) if its
// current length cannot hold target elements. It is the growth policy
// shared by the Leja sequence and the Newton coefficient array: extension
// must stay amortized O(1), never reallocating on every single restart.
// growTo delegates to DataManager.Grow instead of reimplementing the
// doubling rule here; n is unused by that delegation since every element
// beyond it is already zero.
func growTo(buf *[]complex128, n, target int) {
	dm := maths.NewDataManagerWithData(*buf)
	dm.Grow(target)
	*buf = dm.DataPtr()
}
