package util

import (
	"fmt"

	"github.com/twmb/murmur3"
)

// HashFunc ...
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// SlugFromString derives a short, stable, URL-safe slug from s.
func SlugFromString(s string) string {
	return fmt.Sprintf("%08x", HashFunc(s))
}
