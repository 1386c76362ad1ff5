package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge     bool
	Reconcile bool
	Predicate bool
	Render    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("PATTERN_DEBUG_MERGE")
	d.Reconcile = boolEnv("PATTERN_DEBUG_RECONCILE")
	d.Predicate = boolEnv("PATTERN_DEBUG_PREDICATE")
	d.Render = boolEnv("PATTERN_DEBUG_RENDER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Reconcile() bool {
	return d.Reconcile
}
func Predicate() bool {
	return d.Predicate
}
func Render() bool {
	return d.Render
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
