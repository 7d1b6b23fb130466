package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk  bool
	Match bool
	Op    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("NPROP_DEBUG_WALK")
	d.Match = boolEnv("NPROP_DEBUG_MATCH")
	d.Op = boolEnv("NPROP_DEBUG_OP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Match() bool {
	return d.Match
}
func Op() bool {
	return d.Op
}
