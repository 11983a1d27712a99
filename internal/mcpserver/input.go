package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/yamlbridge/convert"
)

// docInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML or JSON file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a YAML or JSON document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline YAML or JSON document content"`
}

// loadedDoc is the text of a docInput plus the identity used for caching.
type loadedDoc struct {
	Text string
	// Key identifies the source: content hash, file path and mtime, or URL.
	Key string
	// Hint is the format implied by a file or URL extension.
	Hint convert.Format
}

// load returns the document text from whichever input was provided.
func (d docInput) load(ctx context.Context) (*loadedDoc, error) {
	count := 0
	for _, s := range []string{d.File, d.URL, d.Content} {
		if s != "" {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	switch {
	case d.Content != "":
		// Enforce inline content size limit.
		if int64(len(d.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set YAMLBRIDGE_MCP_MAX_INLINE_SIZE to increase",
				len(d.Content), cfg.MaxInlineSize)
		}
		h := sha256.Sum256([]byte(d.Content))
		return &loadedDoc{Text: d.Content, Key: "content:" + hex.EncodeToString(h[:])}, nil

	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}
		if info.Size() > cfg.MaxFetchSize {
			return nil, fmt.Errorf("file size %d bytes exceeds maximum %d bytes; set YAMLBRIDGE_MCP_MAX_FETCH_SIZE to increase", info.Size(), cfg.MaxFetchSize)
		}
		data, err := os.ReadFile(absPath) //nolint:gosec // G304: reading caller-selected files is the purpose of file input
		if err != nil {
			return nil, err
		}
		return &loadedDoc{
			Text: string(data),
			Key:  fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano()),
			Hint: convert.DetectFormatFromPath(absPath),
		}, nil

	default:
		data, err := fetchDocument(ctx, d.URL)
		if err != nil {
			return nil, err
		}
		return &loadedDoc{Text: string(data), Key: "url:" + d.URL, Hint: convert.DetectFormatFromPath(d.URL)}, nil
	}
}

// cacheEntry holds a cached tool result with LRU ordering and TTL expiry.
type cacheEntry struct {
	value     any
	insertAt  time.Time
	expiresAt time.Time
}

// resultCacheStore caches tool results per session, keyed by the tool, its
// options and the source key of the document.
type resultCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var resultCache = &resultCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached value. Expired entries are lazily removed.
func (c *resultCacheStore) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	// Touch entry for LRU.
	e.insertAt = time.Now()
	return e.value, true
}

// put stores a value, evicting the least recently used entry if at capacity.
func (c *resultCacheStore) put(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{value: value, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *resultCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// Only the first call spawns a sweeper; it stops when ctx is cancelled.
func (c *resultCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *resultCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *resultCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cached runs compute unless a result for (tool, doc, variant) is cached.
// Errors are never cached.
func cached[T any](tool string, doc *loadedDoc, variant string, compute func() (T, error)) (T, bool, error) {
	var key string
	if cfg.CacheEnabled {
		key = tool + "|" + variant + "|" + doc.Key
		if v, ok := resultCache.get(key); ok {
			if out, ok := v.(T); ok {
				return out, true, nil
			}
		}
	}
	out, err := compute()
	if err != nil {
		return out, false, err
	}
	if key != "" {
		resultCache.put(key, out, cfg.CacheTTL)
	}
	return out, false, nil
}
