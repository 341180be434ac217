package nearby

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/viant/pointdb/index"
)

// Process-wide indexes published from Go, keyed by name.
var published = struct {
	mu     sync.RWMutex
	byName map[string]index.Index
}{byName: make(map[string]index.Index)}

// Publish makes idx queryable by virtual tables created with name. A later
// Publish under the same name replaces the index for subsequent queries.
func Publish(name string, idx index.Index) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("nearby: index name is empty")
	}
	if idx == nil {
		return fmt.Errorf("nearby: index %q is nil", name)
	}
	published.mu.Lock()
	published.byName[name] = idx
	published.mu.Unlock()
	return nil
}

// Withdraw removes a published index and reports whether it existed.
func Withdraw(name string) bool {
	published.mu.Lock()
	defer published.mu.Unlock()
	_, ok := published.byName[name]
	delete(published.byName, name)
	return ok
}

// Lookup returns the index published under name.
func Lookup(name string) (index.Index, bool) {
	published.mu.RLock()
	defer published.mu.RUnlock()
	idx, ok := published.byName[name]
	return idx, ok
}

// Names returns the sorted names of every published index.
func Names() []string {
	published.mu.RLock()
	names := make([]string, 0, len(published.byName))
	for name := range published.byName {
		names = append(names, name)
	}
	published.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Indexes built from source tables, keyed by db path, source and kind.
var sharedCache = struct {
	mu    sync.RWMutex
	byKey map[string]*cacheEntry
}{byKey: make(map[string]*cacheEntry)}

type cacheEntry struct {
	mu  sync.Mutex
	idx index.Index
}

// load returns the cached index, building it when absent. Concurrent callers
// wait for a single build.
func (e *cacheEntry) load(build func() (index.Index, error)) (index.Index, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.idx != nil {
		return e.idx, nil
	}
	idx, err := build()
	if err != nil {
		return nil, err
	}
	e.idx = idx
	return idx, nil
}

func (e *cacheEntry) reset() {
	e.mu.Lock()
	e.idx = nil
	e.mu.Unlock()
}

func cacheKey(dbPath, source, kind string) string {
	return dbPath + "|" + source + "|" + kind
}

func getCacheEntry(key string) *cacheEntry {
	sharedCache.mu.RLock()
	entry := sharedCache.byKey[key]
	sharedCache.mu.RUnlock()
	if entry != nil {
		return entry
	}
	sharedCache.mu.Lock()
	defer sharedCache.mu.Unlock()
	if entry = sharedCache.byKey[key]; entry == nil {
		entry = &cacheEntry{}
		sharedCache.byKey[key] = entry
	}
	return entry
}

// InvalidateCache drops every index built from source so the next query
// rebuilds it, and returns how many were dropped.
func InvalidateCache(source string) int {
	pattern := "|" + source + "|"
	sharedCache.mu.RLock()
	var entries []*cacheEntry
	for key, entry := range sharedCache.byKey {
		if strings.Contains(key, pattern) {
			entries = append(entries, entry)
		}
	}
	sharedCache.mu.RUnlock()
	for _, entry := range entries {
		entry.reset()
	}
	return len(entries)
}
