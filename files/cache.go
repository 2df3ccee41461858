package files

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Compile-time check that Cache implements Source
var _ Source = (*Cache)(nil)

// Cache keeps recently loaded line stores keyed by path.
// Cached slices are shared and must be treated as read-only.
type Cache struct {
	lines *lru.Cache[string, []string]
}

// NewCache creates a cache holding up to size files.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = 16
	}
	c, _ := lru.New[string, []string](size)
	return &Cache{lines: c}
}

// Lines implements Source. It returns the line store for f, loading it on a miss.
// Failed loads are not cached.
func (c *Cache) Lines(f File) ([]string, error) {
	if lines, ok := c.lines.Get(f.Path); ok {
		return lines, nil
	}
	lines, err := Load(f)
	if err != nil {
		return nil, err
	}
	c.lines.Add(f.Path, lines)
	return lines, nil
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	return c.lines.Len()
}
