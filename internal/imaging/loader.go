package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/mitchellh/go-homedir"
)

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// Tools usually sample the same screenshot several times (foreground, then
// background, then a region), so the decoded image is kept until Evict or
// Clear is called.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the image at path, decoding it on first use.
//
// A leading "~" is expanded to the home directory. PNG, JPEG and GIF are
// supported. The expanded path is the cache key, so "~/a.png" and the
// absolute form share one entry.
func (c *ImageCache) Load(path string) (image.Image, error) {
	key, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand path %q: %w", path, err)
	}

	c.mu.RLock()
	if img, ok := c.images[key]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(key)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[key] = img
	c.mu.Unlock()

	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes the image loaded from path, if cached. Call it after
// overwriting a file so the next Load sees the new contents.
func (c *ImageCache) Evict(path string) {
	key, err := homedir.Expand(path)
	if err != nil {
		key = path
	}
	c.mu.Lock()
	delete(c.images, key)
	c.mu.Unlock()
}
