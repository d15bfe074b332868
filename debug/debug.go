package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Compare bool
	Parse   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Compare = boolEnv("RV_DEBUG_COMPARE")
	d.Parse = boolEnv("RV_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Compare reports whether comparator diagnostics should be shown.
func Compare() bool {
	return d.Compare
}

// Parse reports whether literal typing and filter evaluation are traced.
func Parse() bool {
	return d.Parse
}
