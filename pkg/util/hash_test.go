package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugFromString(t *testing.T) {
	slug := SlugFromString("1:글로우 세럼 가이드")

	assert.Equal(t, 8, len(slug))
	// stable across calls
	assert.Equal(t, slug, SlugFromString("1:글로우 세럼 가이드"))
	assert.NotEqual(t, slug, SlugFromString("2:글로우 세럼 가이드"))
}
