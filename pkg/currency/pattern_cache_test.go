package currency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternCacheGetOrCompile(t *testing.T) {
	cache := newPatternCache()

	re := cache.getOrCompile("usd")
	require.NotNil(t, re)
	assert.True(t, re.MatchString("USD"))
	assert.Equal(t, 1, cache.size())

	// A hit returns the already compiled pattern.
	assert.Same(t, re, cache.getOrCompile("usd"))
	assert.Equal(t, 1, cache.size())
}

func TestPatternCacheBlankNotCached(t *testing.T) {
	cache := newPatternCache()

	assert.Nil(t, cache.getOrCompile(""))
	assert.Nil(t, cache.getOrCompile("   "))
	assert.Equal(t, 0, cache.size())
}

func TestPatternCacheInvalidNotCached(t *testing.T) {
	cache := newPatternCache()

	assert.Nil(t, cache.getOrCompile("("))
	assert.Equal(t, 0, cache.size())

	// The same text retries compilation once it becomes valid.
	assert.Nil(t, cache.getOrCompile("[a-"))
	assert.NotNil(t, cache.getOrCompile("[a-z]"))
	assert.Equal(t, 1, cache.size())
}

func TestPatternCacheEviction(t *testing.T) {
	cache := newPatternCache()

	for i := 0; i < patternCacheSize+10; i++ {
		require.NotNil(t, cache.getOrCompile(fmt.Sprintf("p%02d", i)))
	}
	assert.Equal(t, patternCacheSize, cache.size())

	// The earliest patterns were evicted and recompile on demand.
	assert.NotNil(t, cache.getOrCompile("p00"))
	assert.Equal(t, patternCacheSize, cache.size())
}

func TestPatternCacheClear(t *testing.T) {
	cache := newPatternCache()

	cache.getOrCompile("usd")
	cache.clear()
	assert.Equal(t, 0, cache.size())

	// Cleared patterns recompile correctly.
	re := cache.getOrCompile("usd")
	require.NotNil(t, re)
	assert.True(t, re.MatchString("usd rate"))
}
