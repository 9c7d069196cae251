package util

import (
	"github.com/taigrr/colorhash"
)

// NameHash returns a stable hash of a file name. Ordering by it scatters
// neighbouring names across chunks while staying reproducible from one run
// to the next.
func NameHash(name string) int {
	return int(colorhash.HashString(name))
}
