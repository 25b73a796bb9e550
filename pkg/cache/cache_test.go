package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestCacheInsert(t *testing.T) {
	cache := NewCache(10)

	if err := cache.Insert("A", "valueA", 1); err != nil {
		t.Fatalf("Cache insert resulted in unexpected error: %s", err)
	}
	if n := cache.Len(); n != 1 {
		t.Fatalf("Expected cache length to be 1, got %d", n)
	}
}

func TestCacheInsertWithinBudget(t *testing.T) {
	cache := NewCache(3)

	for _, key := range []string{"A", "B", "C"} {
		if err := cache.Insert(key, "value"+key, 1); err != nil {
			t.Fatalf("Cache insert resulted in unexpected error: %s", err)
		}
	}
	if weight := cache.Weight(); weight != 3 {
		t.Fatalf("Expected cache weight to be 3, got %d", weight)
	}
}

func TestCacheInsertUpdatesWeight(t *testing.T) {
	cache := NewCache(2)
	_ = cache.Insert("A", "valueA", 1)
	_ = cache.Insert("B", "valueB", 1)
	// Inserting an additional item should cause eviction due to budget exceedance
	_ = cache.Insert("C", "valueC", 1)

	if weight := cache.Weight(); weight != 2 {
		t.Fatal("Cache with budget 2 did not correctly update weight after evictions")
	}
	if n := cache.Len(); n != 2 {
		t.Fatalf("Expected cache length to be 2, got %d", n)
	}
}

func TestCacheInsertDuplicateRejected(t *testing.T) {
	cache := NewCache(2)
	_ = cache.Insert("dupe", "valueDupe", 1)

	if err := cache.Insert("dupe", "valueDupe", 1); err != ErrDuplicateKey {
		t.Fatalf("Cache insert of duplicate key returned %v, want ErrDuplicateKey", err)
	}
}

func TestCacheInsertEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache(2)
	_ = cache.Insert("evicted", "valueEvicted", 1)
	_ = cache.Insert("A", "valueA", 1)
	_ = cache.Insert("B", "valueB", 1)

	if _, found := cache.Retrieve("evicted"); found {
		t.Fatal("Cache did not evict the least recently used item upon exceeding budget")
	}

	_, foundA := cache.Retrieve("A")
	_, foundB := cache.Retrieve("B")
	if !foundA || !foundB {
		t.Fatal("Cache eviction policy incorrectly removed items")
	}
}

func TestCacheInsertEvictsLeastRecentlyRetrieved(t *testing.T) {
	cache := NewCache(2)
	_ = cache.Insert("A", "valueA", 1)
	_ = cache.Insert("B", "valueB", 1)
	// Accessing "A" makes "B" the least recently used item
	cache.Retrieve("A")
	_ = cache.Insert("C", "valueC", 1)

	if _, foundB := cache.Retrieve("B"); foundB {
		t.Fatal("Cache did not evict the least recently used item after retrieval")
	}
}

func TestClear(t *testing.T) {
	cache := NewCache(1)
	_ = cache.Insert("cleared", "valueCleared", 1)
	cache.Clear()

	if _, found := cache.Retrieve("cleared"); found {
		t.Fatal("Cache did not remove all items upon calling Clear()")
	}
	if n := cache.Len(); n != 0 {
		t.Fatalf("Expected empty cache after Clear(), got length %d", n)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache(16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", i, j%4)
				_ = cache.Insert(key, j, 1)
				cache.Retrieve(key)
			}
		}(i)
	}
	wg.Wait()

	if weight := cache.Weight(); weight > cache.Budget() {
		t.Fatalf("Cache weight %d exceeds budget %d", weight, cache.Budget())
	}
}
