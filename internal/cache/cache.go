// Package cache provides the computation cache used by the HTTP layer.
// Caching is sound because the engine is deterministic: identical inputs
// always produce identical results. The engine itself never touches the
// cache.
package cache

// Cache is the minimal contract the handlers need. Implementations must
// be safe for concurrent use.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
