package partition

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/dendrascience/dirsplit/util"
)

// Order compares two entries and returns a negative number when a belongs
// before b, a positive number when it belongs after, and zero when either
// order is fine. Entries that compare equal keep their enumeration order.
type Order func(a, b Entry) int

// NaturalOrder orders by base name with digit runs compared by value, so
// "2.tmp" comes before "10.tmp".
func NaturalOrder(a, b Entry) int {
	return util.NaturalCompare(a.Name, b.Name)
}

// LexicalOrder orders by the bytes of the base name.
func LexicalOrder(a, b Entry) int {
	return strings.Compare(a.Name, b.Name)
}

// BySize orders smallest first. Files whose size cannot be read count as
// empty. Equal sizes fall back to NaturalOrder.
func BySize(a, b Entry) int {
	if c := cmp.Compare(size(a), size(b)); c != 0 {
		return c
	}
	return NaturalOrder(a, b)
}

// ByModTime orders oldest first. Files whose time cannot be read count as
// the zero time. Equal times fall back to NaturalOrder.
func ByModTime(a, b Entry) int {
	if c := modTime(a).Compare(modTime(b)); c != 0 {
		return c
	}
	return NaturalOrder(a, b)
}

// ByHash orders by a stable hash of the base name, scattering neighbouring
// names across chunks. Hash collisions fall back to NaturalOrder.
func ByHash(a, b Entry) int {
	if c := cmp.Compare(util.NameHash(a.Name), util.NameHash(b.Name)); c != 0 {
		return c
	}
	return NaturalOrder(a, b)
}

// Reverse inverts an order.
func Reverse(o Order) Order {
	return func(a, b Entry) int {
		return o(b, a)
	}
}

// OrderNames lists the names accepted by OrderNamed.
var OrderNames = []string{"natural", "lexical", "size", "mtime", "hash"}

// OrderNamed resolves a built-in order by name.
func OrderNamed(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "natural":
		return NaturalOrder, nil
	case "lexical":
		return LexicalOrder, nil
	case "size":
		return BySize, nil
	case "mtime":
		return ByModTime, nil
	case "hash":
		return ByHash, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownOrder, name, strings.Join(OrderNames, ", "))
}

func size(e Entry) int64 {
	info, err := e.Info()
	if err != nil {
		return 0
	}
	return info.Size()
}

func modTime(e Entry) time.Time {
	info, err := e.Info()
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
