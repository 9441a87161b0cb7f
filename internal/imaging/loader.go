package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	_ "github.com/xfmoulet/qoi" // Register QOI format decoder
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// cachedImage is a decoded image plus the format name image.Decode reported.
type cachedImage struct {
	img    image.Image
	format string
}

// ImageCache keeps decoded images in memory, keyed by file path.
//
// A path is read from disk once; later Load calls return the cached image.
// Paths are used verbatim, so a relative and an absolute path to the same
// file are two entries. ImageCache is safe for concurrent use.
//
// Cached images are never modified. Editing operations (crop, canvas
// resize) return new images and leave the cache untouched.
//
// # Memory Management
//
// Entries stay until Evict or Clear removes them. The image_unload tool
// calls both.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    return err
//	}
//	cache.Evict("/path/to/image.png")
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cachedImage
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
	}
}

// Load returns the image at path, decoding it on first use.
//
// Parameters:
//   - path: File path of the image, used verbatim as the cache key.
//     Supported formats are PNG, JPEG, GIF, BMP, TIFF, WebP and QOI.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the
//     format and color model (e.g., *image.NRGBA, *image.YCbCr).
//   - error: Non-nil if the file cannot be opened or decoded.
//
// # Errors
//
//   - Wraps the os.Open error if the file does not exist or cannot be read
//   - Wraps the image.Decode error if no registered decoder accepts the file
func (c *ImageCache) Load(path string) (image.Image, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.img, nil
}

func (c *ImageCache) load(path string) (cachedImage, error) {
	c.mu.RLock()
	entry, ok := c.images[path]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cachedImage{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return cachedImage{}, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	entry = cachedImage{img: img, format: format}
	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict drops the image cached for path, if any. An image written back to
// the same path by Export must be evicted before it is loaded again.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo describes a loaded image file.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the decoder name, e.g. "png", "jpeg", "bmp" or "qoi".
	Format string `json:"format"`

	// ColorDepth is "8-bit" or "16-bit" per channel.
	ColorDepth string `json:"color_depth"`

	// HasAlpha is true when the pixel type carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// BorderColor is the top-left pixel as RRGGBBAA, the reference color
	// for content selection.
	BorderColor string `json:"border_color"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads path into cache and describes it.
//
// Parameters:
//   - cache: The cache to load through; the image stays cached afterwards.
//   - path: File path of the image.
//
// Returns:
//   - *ImageInfo: Size, format, color depth, alpha, the top-left border
//     color and the file size on disk.
//   - error: Non-nil if the image cannot be loaded or the file cannot be
//     stat'ed.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	img := entry.img
	bounds := img.Bounds()

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.Paletted:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	info := &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        entry.format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}
	if !bounds.Empty() {
		info.BorderColor = hexAt(img, bounds.Min.X, bounds.Min.Y)
	}
	return info, nil
}

// DimensionsResult is the size of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions loads path into cache and returns its size.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
