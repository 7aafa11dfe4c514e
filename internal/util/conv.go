package util

import (
	"strconv"
)

// MustParseUint converts a path or query parameter to uint, 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
