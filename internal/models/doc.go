// Package models defines the domain records for tiptally.
//
// # Models
//
//   - Breakdown: the raw derived amounts for one calculation (tip, tax,
//     total) together with the inputs that produced them
//   - Receipt: the display-string projection of a Breakdown, consumed by
//     the screen and the CLI
//
// Both are derived values: they are recomputed from the current inputs on
// every change and never stored. Nothing in this package outlives the
// current screen session.
//
// # Design Principles
//
//  1. **Derived, not stored**: a Breakdown is always the output of the
//     calculator for the current inputs; there is no cached state to drift
//  2. **Raw and formatted kept apart**: Breakdown carries exact decimals,
//     Receipt carries locale-formatted strings, so tests of the arithmetic
//     never depend on formatting
//  3. **Plain structs**: no behavior beyond data, so the presentation layer
//     can consume them without importing the calculator
package models
