package util

import (
	"fmt"
	"testing"
)

func TestNameHash_Stable(t *testing.T) {
	for _, name := range []string{"", "0.tmp", "report-2024.json", "ünïcode.txt"} {
		first := NameHash(name)
		for range 5 {
			if got := NameHash(name); got != first {
				t.Fatalf("NameHash(%q) changed between calls: %d then %d", name, first, got)
			}
		}
	}
}

func TestNameHash_Spreads(t *testing.T) {
	seen := make(map[int]bool)
	for i := range 100 {
		seen[NameHash(fmt.Sprintf("%d.tmp", i))] = true
	}
	// A handful of collisions is fine; everything hashing alike is not.
	if len(seen) < 50 {
		t.Errorf("expected hashes of 100 names to spread, got %d distinct values", len(seen))
	}
}
