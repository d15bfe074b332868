package value

import (
	"bytes"
	"math"
	"strconv"
)

// TryParseInt64 parses d as an optional '-' followed by one or more ASCII
// digits. Anything else, including a leading '+', whitespace and values
// outside the int64 range, fails.
func TryParseInt64(d []byte) (int64, bool) {
	neg := false
	if len(d) != 0 && d[0] == '-' {
		neg = true
		d = d[1:]
	}
	if len(d) == 0 {
		return 0, false
	}
	// accumulate negatively so that MinInt64 is reachable
	var n int64
	for _, c := range d {
		if !asciiDigit(c) {
			return 0, false
		}
		if n < math.MinInt64/10 {
			return 0, false
		}
		n *= 10
		dig := int64(c - '0')
		if n < math.MinInt64+dig {
			return 0, false
		}
		n -= dig
	}
	if neg {
		return n, true
	}
	if n == math.MinInt64 {
		return 0, false
	}
	return -n, true
}

var (
	infToken    = []byte("inf")
	posInfToken = []byte("+inf")
	negInfToken = []byte("-inf")
	nanToken    = []byte("nan")
)

// TryParseFloat64 parses d with the grammar
//
//	[+-]? ( digits ( '.' digits? )? | '.' digits ) ( [eE] [+-]? digits )?
//
// or, in any case, one of the infinity tokens "inf", "+inf" and "-inf" or
// the not-a-number token "nan". Magnitudes beyond the float64 range fail.
func TryParseFloat64(d []byte) (float64, bool) {
	switch len(d) {
	case 0:
		return 0, false
	case 1:
		if asciiDigit(d[0]) {
			return float64(d[0] - '0'), true
		}
		return 0, false
	}
	switch {
	case bytes.EqualFold(d, infToken), bytes.EqualFold(d, posInfToken):
		return math.Inf(1), true
	case bytes.EqualFold(d, negInfToken):
		return math.Inf(-1), true
	case bytes.EqualFold(d, nanToken):
		return math.NaN(), true
	}
	// the grammar is pure ASCII, so a match is also valid UTF-8
	if floatLen(d) != len(d) {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func floatLen(d []byte) int {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	intDigits := asciiDigits(d[i:])
	i += intDigits
	fracDigits := 0
	if i < len(d) && d[i] == '.' {
		fracDigits = asciiDigits(d[i+1:])
		i += 1 + fracDigits
	}
	if intDigits+fracDigits == 0 {
		return 0
	}
	return i + exp(d[i:])
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
