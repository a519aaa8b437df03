// Package assets loads height-map textures from a list of search directories.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder

	"github.com/Faultbox/hexterrain/internal/logger"
)

// ErrUnsupportedHeightMap is returned for files no registered decoder accepts.
var ErrUnsupportedHeightMap = errors.New("unsupported height map format")

// Manager resolves height-map names against search directories and caches
// decoded images.
type Manager struct {
	dirs  []string
	cache *Cache
	mu    sync.Mutex
}

// NewManager creates a manager that resolves names relative to the working directory.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddDir adds a search directory.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("adding search directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding search directory %s: not a directory", path)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, path)
	m.mu.Unlock()
	return nil
}

// LoadHeightMap returns the decoded image for name.
func (m *Manager) LoadHeightMap(name string) (image.Image, error) {
	if img, ok := m.cache.Get(name); ok {
		return img, nil
	}

	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	m.cache.Set(name, img)
	logger.Debug("height map loaded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))
	return img, nil
}

func (m *Manager) resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		path := filepath.Join(m.dirs[i], name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return name, nil
}

// Close drops every cached image.
func (m *Manager) Close() {
	m.cache.Clear()
}

// DecodeFile decodes a PNG, JPEG, BMP, TIFF or TGA image.
func DecodeFile(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("opening height map: %w", err)
		}
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding height map %s: %w", path, err)
		}
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening height map: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHeightMap, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding height map %s: %w", path, err)
	}
	return img, nil
}

// Cache is a simple in-memory cache of decoded images.
type Cache struct {
	data map[string]image.Image
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]image.Image),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return img, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = img
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]image.Image)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
