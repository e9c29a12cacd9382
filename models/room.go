package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusOccupied    = "occupied"
	RoomStatusCleaning    = "cleaning"
	RoomStatusMaintenance = "maintenance"
)

// RoomImage is one entry of Room.Images. PublicID is the storage key used
// to delete the file later; URL is what the frontend renders.
type RoomImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type Room struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	RoomNumber string          `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"roomNumber"`
	Type       string          `gorm:"size:100" json:"type"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Status     string          `gorm:"size:32;default:available" json:"status"`

	Images      datatypes.JSON `gorm:"column:images" json:"images,omitempty"`
	Description string         `gorm:"type:text" json:"description"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func IsValidRoomStatus(status string) bool {
	switch status {
	case RoomStatusAvailable, RoomStatusBooked, RoomStatusOccupied,
		RoomStatusCleaning, RoomStatusMaintenance:
		return true
	}
	return false
}
