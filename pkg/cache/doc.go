// Package cache provides a generic, thread-safe LRU cache with load-through
// lookups, used to memoize pure derivations such as the per-language content
// projection.
//
// # Usage
//
//	c := cache.NewLRUCache[i18n.Language, []content.ServiceRecord](3)
//
//	records, err := c.GetOrLoad(lang, func() ([]content.ServiceRecord, error) {
//		return content.ProjectServices(table)
//	})
//
// Concurrent GetOrLoad calls for the same key share a single load. Failed
// loads are not cached, so the next call retries.
//
// When the cache is full the least recently used entry is evicted.
// Get, Put and Remove are O(1).
package cache
