package util

import (
	"fmt"
	"testing"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		count int
		size  int
		want  []int
	}{
		{name: "empty", count: 0, size: 3, want: nil},
		{name: "exact multiple", count: 6, size: 3, want: []int{3, 3}},
		{name: "short last chunk", count: 7, size: 3, want: []int{3, 3, 1}},
		{name: "size larger than input", count: 2, size: 10, want: []int{2}},
		{name: "size one", count: 4, size: 1, want: []int{1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]int, tt.count)
			for i := range input {
				input[i] = i
			}

			chunks := Chunk(input, tt.size)
			if len(chunks) != len(tt.want) {
				t.Fatalf("Chunk(%d, %d) produced %d chunks, want %d", tt.count, tt.size, len(chunks), len(tt.want))
			}

			next := 0
			for i, c := range chunks {
				if len(c) != tt.want[i] {
					t.Errorf("chunk %d has %d elements, want %d", i, len(c), tt.want[i])
				}
				for _, v := range c {
					if v != next {
						t.Errorf("chunk %d: got element %d, want %d", i, v, next)
					}
					next++
				}
			}
			if next != tt.count {
				t.Errorf("chunks cover %d elements, want %d", next, tt.count)
			}
		})
	}
}

func TestChunk_CountMatchesCeiling(t *testing.T) {
	for n := 0; n <= 25; n++ {
		for size := 1; size <= 7; size++ {
			t.Run(fmt.Sprintf("n=%d/size=%d", n, size), func(t *testing.T) {
				chunks := Chunk(make([]struct{}, n), size)
				want := (n + size - 1) / size
				if len(chunks) != want {
					t.Errorf("got %d chunks, want %d", len(chunks), want)
				}
			})
		}
	}
}

func TestChunk_AppendDoesNotClobberNeighbour(t *testing.T) {
	input := []int{0, 1, 2, 3}
	chunks := Chunk(input, 2)
	chunks[0] = append(chunks[0], 99)
	if chunks[1][0] != 2 {
		t.Errorf("appending to chunk 0 overwrote chunk 1: %v", chunks[1])
	}
}

func TestChunk_PanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrInvalidChunkSize {
			t.Errorf("expected panic with ErrInvalidChunkSize, got %v", r)
		}
	}()
	Chunk([]int{1}, 0)
}
