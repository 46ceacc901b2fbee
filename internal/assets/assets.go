// Package assets resolves and reads scene files from the asset root.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/invoker/internal/logger"
)

// ErrMissingAsset is wrapped by every error for a file that does not exist.
var ErrMissingAsset = errors.New("missing asset")

// Manager reads files relative to a root directory and caches their contents.
type Manager struct {
	root  string
	cache *Cache
}

// NewManager creates a manager rooted at dir.
func NewManager(root string) *Manager {
	return &Manager{
		root:  root,
		cache: NewCache(),
	}
}

// Path resolves a slash-separated asset name to a filesystem path.
// Absolute names are returned unchanged.
func (m *Manager) Path(name string) string {
	p := filepath.FromSlash(name)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.root, p)
}

// Exists reports whether the named asset is a regular file.
func (m *Manager) Exists(name string) bool {
	info, err := os.Stat(m.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// Load reads the named asset, serving repeats from the cache.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	data, err := os.ReadFile(m.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, m.Path(name))
		}
		return nil, fmt.Errorf("reading %s: %w", m.Path(name), err)
	}

	m.cache.Set(name, data)
	return data, nil
}

// Require checks that every named asset exists. All missing files are reported in
// one combined error so a broken install is diagnosed in a single run.
func (m *Manager) Require(names ...string) error {
	var err error
	for _, name := range names {
		if !m.Exists(name) {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrMissingAsset, m.Path(name)))
		}
	}
	return err
}

// Release drops cached file contents once they have been uploaded.
func (m *Manager) Release() {
	hits, misses := m.cache.Stats()
	logger.Debug("asset cache released",
		zap.String("root", m.root),
		zap.Int("hits", hits),
		zap.Int("misses", misses),
	)
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded files.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear empties the cache and resets statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
