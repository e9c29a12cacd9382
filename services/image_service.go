package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotel-management/models"
)

// ImageStorage is the external image-store collaborator. Room logic only
// sees this interface; the concrete store can be swapped without touching
// the inventory code.
type ImageStorage interface {
	Save(filename string, content io.Reader) (models.RoomImage, error)
	Delete(publicID string) error
}

// DiskImageStorage keeps room images under <Dir>/rooms. The router serves
// Dir at /uploads, so the stored URL is /uploads/<public_id>.
type DiskImageStorage struct {
	Dir string
}

func NewDiskImageStorage(dir string) *DiskImageStorage {
	return &DiskImageStorage{Dir: dir}
}

func (d *DiskImageStorage) Save(filename string, content io.Reader) (models.RoomImage, error) {
	dir := filepath.Join(d.Dir, "rooms")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return models.RoomImage{}, fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	fullpath := filepath.Join(dir, name)

	out, err := os.Create(fullpath)
	if err != nil {
		return models.RoomImage{}, fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		os.Remove(fullpath)
		return models.RoomImage{}, fmt.Errorf("write image file: %w", err)
	}

	publicID := filepath.ToSlash(filepath.Join("rooms", name))
	return models.RoomImage{
		PublicID: publicID,
		URL:      "/uploads/" + publicID,
	}, nil
}

func (d *DiskImageStorage) Delete(publicID string) error {
	// public ids are paths relative to the uploads dir; refuse anything
	// that would escape it.
	clean := filepath.Clean(filepath.FromSlash(publicID))
	if clean == "." || clean == ".." || filepath.IsAbs(clean) ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: invalid image id %q", ErrValidation, publicID)
	}

	err := os.Remove(filepath.Join(d.Dir, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete image file: %w", err)
	}
	return nil
}
