package image

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-color PNG and returns its path.
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "test.png")

	loader := NewFileLoader()
	img, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Errorf("loaded image is %dx%d, want 4x4", bounds.Dx(), bounds.Dy())
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	// Not an image: readable bytes that fail to decode.
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewFileLoader()

	t.Run("empty path", func(t *testing.T) {
		if _, err := loader.Load(""); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("missing file is an access error", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(dir, "missing.png"))
		var accessErr *AccessError
		if !errors.As(err, &accessErr) {
			t.Errorf("error = %v, want *AccessError", err)
		}
	})

	t.Run("directory is an access error", func(t *testing.T) {
		_, err := loader.Load(dir)
		var accessErr *AccessError
		if !errors.As(err, &accessErr) {
			t.Errorf("error = %v, want *AccessError", err)
		}
	})

	t.Run("undecodable file is a load error", func(t *testing.T) {
		_, err := loader.Load(garbage)
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Errorf("error = %v, want *LoadError", err)
		}
	})
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	valid := writeTestPNG(t, dir, "valid.png")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid image file", path: valid, wantErr: false},
		{name: "directory", path: dir, wantErr: false},
		{name: "http url", path: "http://example.com/image.png", wantErr: false},
		{name: "https url", path: "https://example.com/image.png", wantErr: false},
		{name: "empty path", path: "", wantErr: true},
		{name: "missing file", path: filepath.Join(dir, "nope.png"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestScanDirectoryForImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png")
	writeTestPNG(t, dir, "b.png")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	images, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages() unexpected error: %v", err)
	}
	if len(images) != 2 {
		t.Errorf("found %d images, want 2", len(images))
	}

	empty := t.TempDir()
	if _, err := ScanDirectoryForImages(empty); err == nil {
		t.Error("expected error for directory with no images")
	}
}

func TestResolveImagePath(t *testing.T) {
	dir := t.TempDir()
	valid := writeTestPNG(t, dir, "only.png")

	t.Run("file resolves to itself", func(t *testing.T) {
		got, err := ResolveImagePath(valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != valid {
			t.Errorf("resolved to %s, want %s", got, valid)
		}
	})

	t.Run("directory resolves to a contained image", func(t *testing.T) {
		got, err := ResolveImagePath(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != valid {
			t.Errorf("resolved to %s, want %s", got, valid)
		}
	})

	t.Run("url passes through", func(t *testing.T) {
		url := "https://example.com/wall.jpg"
		got, err := ResolveImagePath(url)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != url {
			t.Errorf("resolved to %s, want %s", got, url)
		}
	})
}

func TestGetImageDimensions(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "dims.png")

	w, h, err := GetImageDimensions(path)
	if err != nil {
		t.Fatalf("GetImageDimensions() unexpected error: %v", err)
	}
	if w != 4 || h != 4 {
		t.Errorf("dimensions = %dx%d, want 4x4", w, h)
	}
}
