// Package format names the output formats used to render values.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	encode.Encode(v, w, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/rvalue/encode - Render values and reports
package format
