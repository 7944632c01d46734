package util

import (
	"strconv"
)

// ParseUintOrZero parses a decimal string as uint, returning 0 on failure.
func ParseUintOrZero(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
