package assets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListImagesMissingDir(t *testing.T) {
	images, err := ListImages(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("ListImages returned error: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("expected empty list for missing directory, got %v", images)
	}
}

func TestListImagesEmptyDir(t *testing.T) {
	images, err := ListImages(t.TempDir())
	if err != nil {
		t.Fatalf("ListImages returned error: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("expected empty list for empty directory, got %v", images)
	}
}

func TestListImagesSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.svg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Subdirectories are skipped; no recursion.
	if err := os.Mkdir(filepath.Join(dir, "icons"), 0o755); err != nil {
		t.Fatal(err)
	}

	images, err := ListImages(dir)
	if err != nil {
		t.Fatalf("ListImages returned error: %v", err)
	}
	if want := []string{"a.svg", "b.png"}; !reflect.DeepEqual(images, want) {
		t.Errorf("ListImages = %v, want %v", images, want)
	}
}
