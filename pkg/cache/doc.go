// Package cache holds compiled values keyed by their configuration.
//
// LRU is a bounded, goroutine-safe least-recently-used map. GetOrLoad
// compiles a value on first use and keeps it until it is evicted:
//
//	compiled := cache.New[key, *constraint.Compiled](1024)
//	cc, err := compiled.GetOrLoad(k, func() (*constraint.Compiled, error) {
//		return constraint.New(c, target)
//	})
//
// Failed loads are not cached. OnEvict registers a callback that runs while
// the cache lock is held, so it must not call back into the cache.
package cache
