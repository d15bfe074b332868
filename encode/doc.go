// Package encode renders values for people and for other tools.
//
// # Formats
//
// Encode writes a single value in one of the formats of package format.
// The text format mimics store client output:
//
//	(nil)
//	(integer) 42
//	"hello\xff"
//
// JSON and YAML map values onto their data models (see ToAny).
//
// NewReport and EncodeReport describe a value in depth: its kind, its
// ordering class, its hash and the result of every numeric conversion.
//
// # Colors
//
// EncodeColors(NewColors()) colors text output per kind. Callers decide
// whether the destination is a terminal.
package encode
