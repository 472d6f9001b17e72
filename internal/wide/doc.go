// Package wide provides fixed-width lane types for SIMD-style escape-time
// arithmetic.
//
// All operations work on a fixed group of Width lanes at a time, written as
// loops over small fixed-size arrays so the Go compiler can auto-vectorize
// them. Per-lane divergence is expressed with Mask4 and the Select
// operations rather than branches: a lane that has finished keeps its
// frozen value while the loop advances in lockstep.
//
// Thread safety: all values are plain arrays passed by value; there is no
// shared state.
package wide

// Width is the number of lanes processed per batch.
const Width = 4
