// Package debug provides env-gated debug switches and logging for
// snep internals.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Order bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("SNEP_DEBUG_SCAN")
	d.Order = boolEnv("SNEP_DEBUG_ORDER")
	d.Merge = boolEnv("SNEP_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Order() bool {
	return d.Order
}
func Merge() bool {
	return d.Merge
}
