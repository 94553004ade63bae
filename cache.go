package landing

import (
	"sync"
)

// ThumbnailCache keeps rendered placeholder images in memory. Each image is
// rendered once, on first request.
type ThumbnailCache struct {
	mu     sync.RWMutex
	images map[int][]byte
	render func(n int) ([]byte, error)
}

// NewThumbnailCache creates a ThumbnailCache backed by render.
func NewThumbnailCache(render func(n int) ([]byte, error)) *ThumbnailCache {
	return &ThumbnailCache{images: make(map[int][]byte), render: render}
}

// Get returns the image for project n, rendering it if needed.
// It tries a read lock first; only takes a write lock if a render is needed.
func (c *ThumbnailCache) Get(n int) ([]byte, error) {
	c.mu.RLock()
	data, ok := c.images[n]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if data, ok := c.images[n]; ok {
		return data, nil
	}
	data, err := c.render(n)
	if err != nil {
		return nil, err
	}
	c.images[n] = data
	return data, nil
}

// Len returns the number of cached images.
func (c *ThumbnailCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}
