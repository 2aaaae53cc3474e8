// Package assets resolves and caches on-disk resources such as fonts and
// shader overrides.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Resources locates files under a resource root directory.
type Resources struct {
	Root      string
	ShaderDir string
	cache     *Cache
}

// NewResources creates resources rooted at root, with shaders in root/shaders.
func NewResources(root string) *Resources {
	return &Resources{
		Root:      root,
		ShaderDir: filepath.Join(root, "shaders"),
		cache:     NewCache(),
	}
}

// ResourcePath returns the path of a file under the resource root.
func (r *Resources) ResourcePath(rel string) string {
	return filepath.Join(r.Root, rel)
}

// ShaderPath returns the path of a shader file.
func (r *Resources) ShaderPath(rel string) string {
	return filepath.Join(r.ShaderDir, rel)
}

// Exists reports whether a regular file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load reads a file by path, caching its contents.
func (r *Resources) Load(path string) ([]byte, error) {
	if data, ok := r.cache.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	r.cache.Set(path, data)
	return data, nil
}

// LoadShader returns the shader source at ShaderPath(name) when that file
// exists, and fallback otherwise.
func (r *Resources) LoadShader(name, fallback string) (string, error) {
	data, err := r.Load(r.ShaderPath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FirstExisting returns the path of the first rel that exists under the
// resource root, or "" if none do.
func (r *Resources) FirstExisting(rels ...string) string {
	for _, rel := range rels {
		if p := r.ResourcePath(rel); Exists(p) {
			return p
		}
	}
	return ""
}

// Stats returns cache statistics.
func (r *Resources) Stats() (hits, misses int) {
	return r.cache.Stats()
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

// Clear clears the cache.
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
