package iiif

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
}

func TestFileProviderResolve(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "p0001.png"), 640, 480)

	p := FileProvider{Root: dir}
	w, h, err := p.Resolve(context.Background(), "p0001.png")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if w != 640 || h != 480 {
		t.Errorf("Resolve() = %dx%d, want 640x480", w, h)
	}
}

func TestFileProviderAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.png")
	writeTestPNG(t, path, 10, 20)

	w, h, err := FileProvider{}.Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if w != 10 || h != 20 {
		t.Errorf("Resolve() = %dx%d, want 10x20", w, h)
	}
}

func TestFileProviderMissingFile(t *testing.T) {
	if _, _, err := (FileProvider{Root: t.TempDir()}).Resolve(context.Background(), "nope.png"); err == nil {
		t.Error("Resolve() should fail for a missing file")
	}
}
