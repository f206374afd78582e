// Package background animates the decorative scene behind the header: a
// slowly rotating cloud of particles and a handful of floating wireframe
// cubes, projected through a perspective camera onto a character grid.
//
// A Scene is deterministic for a given seed and sequence of Step calls.
package background
