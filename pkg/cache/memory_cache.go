package cache

import (
	"container/list"
	"sync"
	"time"
)

// cacheItem represents an item in the cache
type cacheItem struct {
	key       string
	value     interface{}
	timestamp time.Time
	element   *list.Element
}

// MemoryCache is an LRU cache with TTL support. Fetch results for a
// keyword/date-range/credential combination are memoized here so that
// repeated analysis runs within the TTL skip the upstream calls.
type MemoryCache struct {
	maxSize int
	items   map[string]*cacheItem
	lruList *list.List
	mu      sync.RWMutex
	ttl     time.Duration
}

// NewMemoryCache creates a cache with the given size and TTL. A zero TTL
// disables expiry.
func NewMemoryCache(maxSize int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		maxSize: maxSize,
		items:   make(map[string]*cacheItem),
		lruList: list.New(),
		ttl:     ttl,
	}
}

// Set adds or updates an item in the cache
func (mc *MemoryCache) Set(key string, value interface{}) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := time.Now()

	if item, exists := mc.items[key]; exists {
		item.value = value
		item.timestamp = now
		mc.lruList.MoveToFront(item.element)
		return
	}

	item := &cacheItem{
		key:       key,
		value:     value,
		timestamp: now,
	}

	element := mc.lruList.PushFront(item)
	item.element = element
	mc.items[key] = item

	if len(mc.items) > mc.maxSize {
		mc.evictOldest()
	}
}

// Get retrieves an item, checking expiry before reuse.
func (mc *MemoryCache) Get(key string) (interface{}, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	item, exists := mc.items[key]
	if !exists {
		return nil, false
	}

	if mc.ttl > 0 && time.Since(item.timestamp) > mc.ttl {
		mc.deleteItem(item)
		return nil, false
	}

	mc.lruList.MoveToFront(item.element)

	return item.value, true
}

// Delete removes an item from the cache
func (mc *MemoryCache) Delete(key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if item, exists := mc.items[key]; exists {
		mc.deleteItem(item)
	}
}

// Clear removes all items from the cache
func (mc *MemoryCache) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.items = make(map[string]*cacheItem)
	mc.lruList = list.New()
}

// Size returns the current number of items in the cache
func (mc *MemoryCache) Size() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.items)
}

// evictOldest removes the least recently used item
func (mc *MemoryCache) evictOldest() {
	element := mc.lruList.Back()
	if element != nil {
		item := element.Value.(*cacheItem)
		mc.deleteItem(item)
	}
}

// deleteItem removes an item from both map and list
func (mc *MemoryCache) deleteItem(item *cacheItem) {
	delete(mc.items, item.key)
	mc.lruList.Remove(item.element)
}
