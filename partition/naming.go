package partition

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Namer names the destination directory of the chunk at index. The name must
// depend on the index alone and be a single path segment.
type Namer func(index int) string

// DecimalNames names chunks 0, 1, 2, ...
func DecimalNames(index int) string {
	return strconv.Itoa(index)
}

// PaddedNames names chunks with zero-padded decimals of at least width
// digits, so a plain directory listing shows them in order.
func PaddedNames(width int) Namer {
	return func(index int) string {
		return fmt.Sprintf("%0*d", width, index)
	}
}

// AlphaNames names chunks a, b, ..., z, aa, ab, ... in spreadsheet column
// style.
func AlphaNames(index int) string {
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('a'+(n-1)%26))
	}
	slices.Reverse(buf)
	return string(buf)
}

// NamingNames lists the names accepted by NamerNamed.
var NamingNames = []string{"decimal", "padded", "alpha"}

// NamerNamed resolves a built-in namer by name. width only applies to
// "padded".
func NamerNamed(name string, width int) (Namer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "decimal":
		return DecimalNames, nil
	case "padded":
		if width <= 0 {
			return nil, fmt.Errorf("%w: padded naming needs a positive width, got %d", ErrUnknownNaming, width)
		}
		return PaddedNames(width), nil
	case "alpha":
		return AlphaNames, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownNaming, name, strings.Join(NamingNames, ", "))
}

// validateDirName rejects names that would place a chunk anywhere other
// than directly inside the root.
func validateDirName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidDirName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidDirName, name)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidDirName, name)
	case filepath.IsAbs(name):
		return fmt.Errorf("%w: %q is absolute", ErrInvalidDirName, name)
	}
	return nil
}
