package currency

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrNilCurrency is returned when upserting a record without a symbol.
	ErrNilCurrency = errors.New("currency symbol cannot be empty")
)

// Registry is the authoritative in-memory table of known currencies, keyed
// by uppercased symbol. Lookups treat their argument as a case-insensitive
// regular expression with find-anywhere semantics, so an exact symbol like
// "USD" and a fragment like "Dollar" both work through the same path.
// Lookup methods never fail on bad patterns; they report no match instead.
//
// All methods are safe for concurrent use without external locking.
type Registry struct {
	mu       sync.RWMutex
	bySymbol map[string]Currency

	patterns *patternCache
}

// New returns an isolated registry seeded with the built-in currency set.
// Most callers want the shared Default instance; isolated instances exist
// for tests and embedders that manage their own lifecycle.
func New() *Registry {
	r := &Registry{
		bySymbol: make(map[string]Currency, DefaultCurrencyCount),
		patterns: newPatternCache(),
	}
	r.seedDefaults()
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, constructing and seeding it on
// first call. The instance lives for the life of the process.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Upsert inserts or replaces the entry keyed by the uppercased symbol of c.
// The previous entry, if any, is replaced wholesale (last write wins).
func (r *Registry) Upsert(c Currency) error {
	if c.Symbol == "" {
		return ErrNilCurrency
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySymbol[strings.ToUpper(c.Symbol)] = c
	return nil
}

// Add inserts a currency with an undetermined locale, keyed by the
// uppercased symbol. Unlike Upsert, Add never replaces an existing entry;
// adding a known symbol is a no-op.
func (r *Registry) Add(symbol, name string) error {
	if symbol == "" {
		return ErrNilCurrency
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	upper := strings.ToUpper(symbol)
	if _, ok := r.bySymbol[upper]; !ok {
		r.bySymbol[upper] = Currency{Symbol: symbol, Name: name}
	}
	return nil
}

// FindBySymbol returns the first currency whose symbol matches the given
// case-insensitive pattern, if any. Blank or invalid patterns match nothing.
// Iteration order over the table is unspecified.
func (r *Registry) FindBySymbol(pattern string) (Currency, bool) {
	re := r.patterns.getOrCompile(pattern)
	if re == nil {
		return Currency{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for symbol, c := range r.bySymbol {
		if re.MatchString(symbol) {
			return c, true
		}
	}
	return Currency{}, false
}

// FindByName returns the first currency whose full name matches the given
// case-insensitive pattern, if any.
func (r *Registry) FindByName(pattern string) (Currency, bool) {
	re := r.patterns.getOrCompile(pattern)
	if re == nil {
		return Currency{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.bySymbol {
		if re.MatchString(c.Name) {
			return c, true
		}
	}
	return Currency{}, false
}

// Contains reports whether any stored symbol matches the given pattern.
func (r *Registry) Contains(pattern string) bool {
	_, ok := r.FindBySymbol(pattern)
	return ok
}

// Search returns every currency whose symbol or name matches the given
// pattern. The result is never nil and its order is unspecified.
func (r *Registry) Search(pattern string) []Currency {
	matches := make([]Currency, 0)

	re := r.patterns.getOrCompile(pattern)
	if re == nil {
		return matches
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.bySymbol {
		if re.MatchString(c.Symbol) || re.MatchString(c.Name) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Currencies returns a snapshot of all records. Mutating the returned slice
// does not affect the registry.
func (r *Registry) Currencies() []Currency {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Currency, 0, len(r.bySymbol))
	for _, c := range r.bySymbol {
		all = append(all, c)
	}
	return all
}

// Symbols returns a snapshot of all stored (uppercased) symbols.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	symbols := make([]string, 0, len(r.bySymbol))
	for symbol := range r.bySymbol {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// Size returns the number of currencies in the registry.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bySymbol)
}

// Refresh fetches the canonical currency list from the lister and applies
// every returned entry with Upsert semantics, so names of known currencies
// are updated in place. Fetch and parse failures propagate unchanged and
// leave already-applied entries in place.
func (r *Registry) Refresh(ctx context.Context, lister Lister) error {
	currencies, err := lister.Currencies(ctx)
	if err != nil {
		return err
	}

	for symbol, name := range currencies {
		if err := r.Upsert(Currency{Symbol: symbol, Name: name}); err != nil {
			return errors.Wrapf(err, "failed to apply currency %q", symbol)
		}
	}
	return nil
}

// Reset restores the registry to its initial state: the table is cleared
// and re-seeded with the built-in currency set, and the pattern cache is
// emptied. The swap is atomic with respect to concurrent readers.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySymbol = make(map[string]Currency, DefaultCurrencyCount)
	r.seedLocked()
	r.patterns.clear()
}

// ClearPatternCache drops all cached compiled patterns.
func (r *Registry) ClearPatternCache() {
	r.patterns.clear()
}

// PatternCacheSize returns the number of resident compiled patterns.
func (r *Registry) PatternCacheSize() int {
	return r.patterns.size()
}

func (r *Registry) seedDefaults() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seedLocked()
}

func (r *Registry) seedLocked() {
	for _, c := range defaultCurrencies() {
		r.bySymbol[strings.ToUpper(c.Symbol)] = c
	}
}
