// Package output provides deterministic encoding for ngmap reports.
//
// Two runs over the same project produce byte-identical JSON apart from the
// run identifier and timestamp:
//   - Struct fields and map keys are emitted in sorted order
//   - Floats are rounded to 6 decimal places
//   - Lists are always emitted as arrays; an empty list is [] and never null
//   - omitempty fields are dropped when empty
//
// Values implementing json.Marshaler or encoding.TextMarshaler, and time.Time,
// are passed through to encoding/json untouched.
package output
