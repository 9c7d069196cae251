package util

// Chunk splits s into contiguous groups of at most size elements. The groups
// share the backing array of s. An empty input yields no groups.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		panic(ErrInvalidChunkSize)
	}
	count := len(s)
	if count == 0 {
		return nil
	}
	res := make([][]T, 0, (count+size-1)/size)
	for from := 0; from < count; from += size {
		to := min(from+size, count)
		res = append(res, s[from:to:to])
	}
	return res
}
