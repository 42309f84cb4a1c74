// Package imagecache downloads remote source images into a local cache so
// repeated palette extractions of the same URL do not refetch.
package imagecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	httputil "github.com/scanton/ColorPalette/internal/util/http"
)

// CacheOptions configures image caching behavior.
type CacheOptions struct {
	// CacheDir is the directory where images will be cached.
	// If empty, defaults to the user cache dir under colorpalette/images.
	CacheDir string

	// Refresh forces a fresh download even when a cached copy exists.
	Refresh bool
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fall back to the home directory if no cache dir is available.
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "colorpalette", "images"), nil
	}
	return filepath.Join(cacheDir, "colorpalette", "images"), nil
}

// cacheFilename derives a deterministic filename for a URL: a SHA256-based
// name plus the URL's image extension, so the decoder can still sniff the
// format from the path.
func cacheFilename(url string) string {
	hash := sha256.Sum256([]byte(url))

	ext := filepath.Ext(url)
	if idx := strings.IndexByte(ext, '?'); idx != -1 {
		ext = ext[:idx]
	}
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}

	return fmt.Sprintf("%x%s", hash[:16], ext)
}

// DownloadAndCache downloads a remote image into the cache directory and
// returns the local path. An existing cached copy is reused unless Refresh
// is set.
func DownloadAndCache(ctx context.Context, url string, opts CacheOptions) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		defaultDir, err := DefaultCacheDir()
		if err != nil {
			return "", err
		}
		cacheDir = defaultDir
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	cachedPath := filepath.Join(cacheDir, cacheFilename(url))

	if !opts.Refresh {
		if _, err := os.Stat(cachedPath); err == nil {
			return cachedPath, nil
		}
	}

	data, err := httputil.Fetch(ctx, url, httputil.FetchOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	if err := os.WriteFile(cachedPath, data, 0o644); err != nil { // #nosec G306 - Cache files need standard read permissions
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}

	return cachedPath, nil
}

// Clear removes every cached image. A missing cache directory is not an
// error.
func Clear(cacheDir string) error {
	if cacheDir == "" {
		defaultDir, err := DefaultCacheDir()
		if err != nil {
			return err
		}
		cacheDir = defaultDir
	}

	if err := os.RemoveAll(cacheDir); err != nil {
		return fmt.Errorf("failed to clear image cache: %w", err)
	}
	return nil
}
