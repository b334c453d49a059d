// Package fsx provides the small set of filesystem primitives the
// organizing pass is built on: home-directory expansion, collision-free
// destination naming, and a move that survives filesystem boundaries.
package fsx
