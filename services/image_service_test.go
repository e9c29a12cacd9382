package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskImageStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskImageStorage(dir)

	img, err := store.Save("front.png", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(img.PublicID, "rooms/") {
		t.Fatalf("public id should live under rooms/, got %q", img.PublicID)
	}
	if !strings.HasSuffix(img.PublicID, ".png") {
		t.Fatalf("public id should keep the extension, got %q", img.PublicID)
	}
	if img.URL != "/uploads/"+img.PublicID {
		t.Fatalf("url should point at the static route, got %q", img.URL)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(img.PublicID)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}

	if err := store.Delete(img.PublicID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(img.PublicID))); !os.IsNotExist(err) {
		t.Fatalf("file should be gone after delete")
	}
}

func TestDiskImageStorage_SaveDefaultsExtension(t *testing.T) {
	store := NewDiskImageStorage(t.TempDir())
	img, err := store.Save("noext", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(img.PublicID, ".jpg") {
		t.Fatalf("extensionless uploads should default to .jpg, got %q", img.PublicID)
	}
}

func TestDiskImageStorage_DeleteMissingIsNoop(t *testing.T) {
	store := NewDiskImageStorage(t.TempDir())
	if err := store.Delete("rooms/never-existed.jpg"); err != nil {
		t.Fatalf("deleting a missing file should be a no-op, got %v", err)
	}
}

func TestDiskImageStorage_DeleteRejectsEscapes(t *testing.T) {
	store := NewDiskImageStorage(t.TempDir())
	for _, pid := range []string{"../etc/passwd", "/etc/passwd", ".", "..", "rooms/../../etc/passwd"} {
		if err := store.Delete(pid); !errors.Is(err, ErrValidation) {
			t.Fatalf("Delete(%q) should be ErrValidation, got %v", pid, err)
		}
	}
}

func TestDiskImageStorage_DeleteAllowsDottedNames(t *testing.T) {
	store := NewDiskImageStorage(t.TempDir())
	// names that merely start with dots stay inside the uploads dir
	for _, pid := range []string{"..thumb.jpg", "rooms/..thumb.jpg"} {
		if err := store.Delete(pid); err != nil {
			t.Fatalf("Delete(%q) should be accepted, got %v", pid, err)
		}
	}
}
