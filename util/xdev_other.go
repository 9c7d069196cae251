//go:build !unix

package util

// IsCrossDevice always reports false on platforms without EXDEV.
func IsCrossDevice(err error) bool {
	return false
}
