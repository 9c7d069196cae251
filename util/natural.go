package util

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalCollator orders names the way people expect numbered files to be
// ordered: runs of ASCII digits compare by numeric value, everything else
// compares with the collation rules of a language. A digit run sorts before
// any non-digit run at the same position, so the collator never sees a
// digit run. Names that still compare equal fall back to byte order so the
// result is a total order.
//
// A NaturalCollator is not safe for concurrent use.
type NaturalCollator struct {
	c *collate.Collator
}

// NewNaturalCollator returns a collator for the given language. Use
// language.Und for the root collation order.
func NewNaturalCollator(tag language.Tag) *NaturalCollator {
	return &NaturalCollator{c: collate.New(tag)}
}

// Compare returns a negative number when a sorts before b, a positive number
// when a sorts after b, and zero only when a == b.
func (n *NaturalCollator) Compare(a, b string) int {
	x, y := a, b
	for x != "" && y != "" {
		rx, restX := nextRun(x)
		ry, restY := nextRun(y)

		var c int
		dx, dy := isDigit(rx[0]), isDigit(ry[0])
		switch {
		case dx && dy:
			c = compareDigitRuns(rx, ry)
		case dx:
			c = -1
		case dy:
			c = 1
		default:
			c = n.c.CompareString(rx, ry)
		}
		if c != 0 {
			return c
		}
		x, y = restX, restY
	}
	switch {
	case x == "" && y != "":
		return -1
	case x != "" && y == "":
		return 1
	}
	return strings.Compare(a, b)
}

var collatorPool = sync.Pool{
	New: func() any { return NewNaturalCollator(language.Und) },
}

// NaturalCompare compares two names in natural order using the root
// collation. It is safe for concurrent use.
func NaturalCompare(a, b string) int {
	n := collatorPool.Get().(*NaturalCollator)
	defer collatorPool.Put(n)
	return n.Compare(a, b)
}

// nextRun splits s into its leading run of digits or non-digits and the rest.
func nextRun(s string) (string, string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// compareDigitRuns compares two digit strings by value without converting
// them to integers, so arbitrarily long runs cannot overflow.
func compareDigitRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
