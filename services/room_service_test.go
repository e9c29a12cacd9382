package services

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"hotel-management/models"

	"gorm.io/datatypes"
)

// A client that GETs a room and PUTs it back sends the API field names
// plus identity and timestamp fields. The update must map the names onto
// columns and drop the rest.
func TestNormalizeRoomUpdates_RoundTripPayload(t *testing.T) {
	payload := map[string]interface{}{
		"id":          float64(3),
		"roomNumber":  "101",
		"type":        "deluxe",
		"price":       120.5,
		"status":      models.RoomStatusAvailable,
		"description": "sea view",
		"amenities":   []interface{}{"wifi"},
		"images":      []interface{}{},
		"createdAt":   "2024-06-01T00:00:00Z",
		"updatedAt":   "2024-06-01T00:00:00Z",
		"deletedAt":   nil,
	}

	got, err := normalizeRoomUpdates(payload)
	if err != nil {
		t.Fatalf("round-tripped payload should normalize, got %v", err)
	}
	if got["room_number"] != "101" {
		t.Fatalf("roomNumber should map to room_number, got %v", got["room_number"])
	}
	for _, key := range []string{"roomNumber", "id", "images", "createdAt", "created_at"} {
		if _, ok := got[key]; ok {
			t.Fatalf("%q must not reach the update", key)
		}
	}
	raw, ok := got["amenities"].(datatypes.JSON)
	if !ok {
		t.Fatalf("amenities should be re-marshalled, got %T", got["amenities"])
	}
	var amenities []string
	if err := json.Unmarshal(raw, &amenities); err != nil || len(amenities) != 1 || amenities[0] != "wifi" {
		t.Fatalf("amenities column = %s, want [\"wifi\"]", raw)
	}
}

func TestNormalizeRoomUpdates_RejectsUnknownField(t *testing.T) {
	_, err := normalizeRoomUpdates(map[string]interface{}{"floor": 3})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown field should be ErrValidation, got %v", err)
	}
}

func TestNormalizeRoomUpdates_EmptyAfterStripping(t *testing.T) {
	_, err := normalizeRoomUpdates(map[string]interface{}{"id": float64(1), "images": []interface{}{}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("identity-only payload should be ErrValidation, got %v", err)
	}
}

func TestNormalizeRoomUpdates_InvalidStatus(t *testing.T) {
	_, err := normalizeRoomUpdates(map[string]interface{}{"status": "Booked"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("invalid status should be ErrValidation, got %v", err)
	}
}

func TestPruneImages(t *testing.T) {
	images := []models.RoomImage{
		{PublicID: "rooms/a.jpg"},
		{PublicID: "rooms/b.jpg"},
	}
	kept := pruneImages(images, map[string]struct{}{"rooms/a.jpg": {}})
	if len(kept) != 1 || kept[0].PublicID != "rooms/b.jpg" {
		t.Fatalf("prune kept %v, want only rooms/b.jpg", kept)
	}
}

type failingImageStorage struct {
	attempted []string
}

func (f *failingImageStorage) Save(string, io.Reader) (models.RoomImage, error) {
	return models.RoomImage{}, errors.New("not implemented")
}

func (f *failingImageStorage) Delete(publicID string) error {
	f.attempted = append(f.attempted, publicID)
	return errors.New("storage down")
}

func TestDeleteStoredImages_BestEffort(t *testing.T) {
	storage := &failingImageStorage{}
	deleteStoredImages(storage, []string{"rooms/a.jpg", "rooms/b.jpg"})
	if len(storage.attempted) != 2 {
		t.Fatalf("every id should be attempted even after a failure, got %v", storage.attempted)
	}
}
