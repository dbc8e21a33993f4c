// Package value decodes dynamic stack values into tagged native payloads.
//
// A Value is constructed fresh per stack position per call by Decode, which
// classifies the runtime's type tag and extracts exactly one payload. Typed
// extraction via As converts the payload to a concrete native type, applying
// the numeric leniency rules the binder has always had: a fractional number
// asked for as an integer is truncated, an integer asked for as a float is
// widened. All other cross-kind extraction is a contract violation guarded
// against upstream by argument validation.
package value
