// Package debug provides env-var gated debug logging for yamlet
// internals. Set YAMLET_DEBUG_PARSE, YAMLET_DEBUG_MODIFY or
// YAMLET_DEBUG_PATCH to a truthy value to see the corresponding trace
// on stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Modify bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YAMLET_DEBUG_PARSE")
	d.Modify = boolEnv("YAMLET_DEBUG_MODIFY")
	d.Patch = boolEnv("YAMLET_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Modify() bool {
	return d.Modify
}
func Patch() bool {
	return d.Patch
}
