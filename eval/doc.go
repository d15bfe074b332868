// Package eval compiles expr-lang predicates over a value.
//
// The value is bound to v, and these functions are available:
//
//	kind(v)     "Null", "Integer" or "Raw"
//	class(v)    "Null", "Int64", "Float64" or "Raw"
//	isnull(v)   whether v is Null
//	toint(v)    v as an integer, failing the match if it is not one
//	tofloat(v)  v as a float
//	text(v)     the text of v
//	cmp(v, x)   value ordering of v against the literal x
//	eq(v, x)    value equality of v and the literal x
//	getenv(s)   an environment variable
//
// For example `cmp(v, 100) >= 0 && kind(v) == "Raw"`.
package eval
