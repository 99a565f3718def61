// Package conv provides exact numeric conversion utilities.
//
// These functions perform bounds and exactness checks so that callers never
// silently truncate or round a value while moving it from a floating point
// to an integer representation, as needed by formats that carry every number
// as a double.
package conv
