package currency

import (
	"regexp"
	"strings"
	"sync"

	"github.com/ethauvin/frankfurter-go/pkg/cache"
)

// patternCacheSize bounds the number of compiled patterns kept resident.
const patternCacheSize = 50

// patternCache memoizes case-insensitively compiled regular expressions by
// their source text, backed by a bounded LRU so arbitrary ad-hoc queries
// cannot grow memory without bound. Safe for concurrent use.
type patternCache struct {
	mu  sync.Mutex
	lru cache.Cache
}

func newPatternCache() *patternCache {
	return &patternCache{
		lru: cache.NewCache(patternCacheSize),
	}
}

// getOrCompile returns the compiled case-insensitive form of pattern,
// compiling and caching it on first use. Blank patterns and patterns that do
// not compile yield nil and are never cached, so a fixed-and-retried pattern
// always recompiles.
func (p *patternCache) getOrCompile(pattern string) *regexp.Regexp {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, ok := p.lru.Retrieve(pattern); ok {
		return cached.(*regexp.Regexp)
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil
	}

	_ = p.lru.Insert(pattern, re, 1)
	return re
}

func (p *patternCache) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lru.Clear()
}

func (p *patternCache) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.lru.Len()
}
