// Package target defines the simulation-model collaborator that translated
// records are materialized into, and an in-memory implementation of it.
//
// The contract mirrors what an energy-simulation model API exposes:
//   - Find an object of a lookup category by name
//   - Create an empty object of a concrete kind
//   - Set attributes, append construction layers, attach sub-surfaces
//     to their parent surface, assign a vertex loop
//
// Every setter is fallible. The in-memory model rejects attributes a kind
// does not carry, values outside a choice set, non-finite numbers and vertex
// loops with fewer than three points, the same way a real model API refuses
// an invalid assignment.
package target
