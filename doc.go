// Package propagator evaluates the action of a scalar analytic function of
// a large linear operator on a vector, Ψ_out = f(H·dt)·Ψ_in, using a
// restarted-Arnoldi Newton-polynomial expansion on adaptively selected Leja
// interpolation nodes. H need only be available through a matrix-vector
// product; the default f is the quantum-mechanical propagator exp(-iz).
//
// The package is organized as a small pipeline of focused subpackages:
// maths holds the vector algebra primitives, krylov builds the Arnoldi
// basis and its Hessenberg projection and diagonalizes it for Ritz values,
// leja selects interpolation nodes and computes Newton divided
// differences, and this package drives the restart loop that ties them
// together and owns the preallocated Workspace.
package propagator
