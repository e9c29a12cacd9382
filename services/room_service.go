package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"hotel-management/models"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomService owns the room inventory. Image upload and delete go through
// the injected ImageStorage collaborator.
type RoomService struct {
	DB     *gorm.DB
	Images ImageStorage
}

func NewRoomService(db *gorm.DB, images ImageStorage) *RoomService {
	return &RoomService{DB: db, Images: images}
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate entry") || strings.Contains(lower, "unique constraint")
}

type CreateRoomInput struct {
	RoomNumber  string
	Type        string
	Price       decimal.Decimal
	Status      string
	Description string
	Amenities   []string
}

func (s *RoomService) Create(in CreateRoomInput) (*models.Room, error) {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	in.Type = strings.TrimSpace(in.Type)
	if in.RoomNumber == "" || in.Type == "" {
		return nil, fmt.Errorf("%w: roomNumber and type are required", ErrValidation)
	}
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if in.Status == "" {
		in.Status = models.RoomStatusAvailable
	}
	if !models.IsValidRoomStatus(in.Status) {
		return nil, fmt.Errorf("%w: invalid room status %q", ErrValidation, in.Status)
	}

	if in.Amenities == nil {
		in.Amenities = []string{}
	}
	amenitiesJSON, err := json.Marshal(in.Amenities)
	if err != nil {
		return nil, fmt.Errorf("marshal amenities: %w", err)
	}
	imagesJSON, _ := json.Marshal([]models.RoomImage{})

	room := models.Room{
		RoomNumber:  in.RoomNumber,
		Type:        in.Type,
		Price:       in.Price,
		Status:      in.Status,
		Description: strings.TrimSpace(in.Description),
		Amenities:   datatypes.JSON(amenitiesJSON),
		Images:      datatypes.JSON(imagesJSON),
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateError(err) {
			return nil, fmt.Errorf("%w: room number %q already exists", ErrConflict, in.RoomNumber)
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

// Columns accepted in a partial room update, keyed by the JSON field
// names the API emits. Snake_case aliases are accepted too.
var roomUpdateColumns = map[string]string{
	"roomNumber":  "room_number",
	"room_number": "room_number",
	"type":        "type",
	"price":       "price",
	"status":      "status",
	"description": "description",
	"amenities":   "amenities",
}

// normalizeRoomUpdates maps JSON field names onto their columns and
// validates the values. Identity and timestamp fields are silently
// dropped so a client can PUT back a previously fetched room; any other
// unknown key is rejected.
func normalizeRoomUpdates(updates map[string]interface{}) (map[string]interface{}, error) {
	normalized := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		switch key {
		case "id", "images",
			"createdAt", "updatedAt", "deletedAt",
			"created_at", "updated_at", "deleted_at":
			continue
		}
		column, ok := roomUpdateColumns[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrValidation, key)
		}
		normalized[column] = value
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields in payload", ErrValidation)
	}

	if raw, ok := normalized["status"]; ok {
		status, _ := raw.(string)
		if !models.IsValidRoomStatus(status) {
			return nil, fmt.Errorf("%w: invalid room status %q", ErrValidation, status)
		}
	}
	if amenities, ok := normalized["amenities"]; ok {
		b, err := json.Marshal(amenities)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid amenities payload", ErrValidation)
		}
		normalized["amenities"] = datatypes.JSON(b)
	}
	return normalized, nil
}

// Update applies a partial update with API field names in the payload.
func (s *RoomService) Update(id uint, updates map[string]interface{}) (*models.Room, error) {
	normalized, err := normalizeRoomUpdates(updates)
	if err != nil {
		return nil, err
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(room).Updates(normalized).Error; err != nil {
		if isDuplicateError(err) {
			return nil, fmt.Errorf("%w: room number already exists", ErrConflict)
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: room %d", ErrNotFound, id)
	}
	return nil
}

// UpdateStatus validates against the room status enum before writing.
func (s *RoomService) UpdateStatus(id uint, status string) (*models.Room, error) {
	if !models.IsValidRoomStatus(status) {
		return nil, fmt.Errorf("%w: invalid room status %q", ErrValidation, status)
	}
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(room).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update room %d status: %w", id, err)
	}
	room.Status = status
	return room, nil
}

// ---------------------------
// Images
// ---------------------------

// Upload is one incoming image file.
type Upload struct {
	Filename string
	Content  io.Reader
}

func decodeImageList(raw datatypes.JSON) []models.RoomImage {
	images := []models.RoomImage{}
	if len(raw) > 0 {
		// best-effort: a malformed column resets to empty
		_ = json.Unmarshal(raw, &images)
	}
	return images
}

// AttachImages stores each upload via the image collaborator and appends the
// results to the room's image list.
func (s *RoomService) AttachImages(id uint, uploads []Upload) (*models.Room, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no image files provided", ErrValidation)
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	images := decodeImageList(room.Images)
	for _, u := range uploads {
		img, err := s.Images.Save(u.Filename, u.Content)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		images = append(images, img)
	}

	b, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	if err := s.DB.Model(room).Update("images", datatypes.JSON(b)).Error; err != nil {
		return nil, fmt.Errorf("failed to save room %d images: %w", id, err)
	}
	room.Images = datatypes.JSON(b)
	return room, nil
}

func pruneImages(images []models.RoomImage, drop map[string]struct{}) []models.RoomImage {
	kept := images[:0]
	for _, img := range images {
		if _, ok := drop[img.PublicID]; !ok {
			kept = append(kept, img)
		}
	}
	return kept
}

// deleteStoredImages is best-effort: by the time it runs the image list no
// longer references these ids, so a failed delete only leaves an orphan
// file behind.
func deleteStoredImages(storage ImageStorage, publicIDs []string) {
	for _, pid := range publicIDs {
		if err := storage.Delete(pid); err != nil {
			log.Printf("failed to delete room image %s: %v", pid, err)
		}
	}
}

// DetachImages drops the named images from the room's image list, then
// deletes the files from storage. The list is written first so the room
// never references a file that is already gone.
func (s *RoomService) DetachImages(id uint, publicIDs []string) (*models.Room, error) {
	if len(publicIDs) == 0 {
		return nil, fmt.Errorf("%w: public_ids is required", ErrValidation)
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	drop := make(map[string]struct{}, len(publicIDs))
	for _, pid := range publicIDs {
		drop[pid] = struct{}{}
	}
	kept := pruneImages(decodeImageList(room.Images), drop)

	b, err := json.Marshal(kept)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	if err := s.DB.Model(room).Update("images", datatypes.JSON(b)).Error; err != nil {
		return nil, fmt.Errorf("failed to save room %d images: %w", id, err)
	}
	room.Images = datatypes.JSON(b)

	deleteStoredImages(s.Images, publicIDs)
	return room, nil
}
