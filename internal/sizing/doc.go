// Package sizing maps body measurements to a two-piece suit size.
//
// The jacket size is picked from a weight-banding table and optionally bumped by the chest fit adjustment.
// Trousers always follow the jacket with a fixed drop. Nothing in this package validates ranges: every input yields a size.
package sizing
