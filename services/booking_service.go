// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-management/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService wraps *gorm.DB with the availability and booking lifecycle
// logic.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ---------------------------
// Transition rules
// ---------------------------

func canConfirm(status string) error {
	if status == models.BookingStatusConfirmed {
		return fmt.Errorf("%w: booking already confirmed", ErrInvalidState)
	}
	return nil
}

func canCheckIn(status string) error {
	if status != models.BookingStatusConfirmed {
		return fmt.Errorf("%w: booking must be confirmed before check-in", ErrInvalidState)
	}
	return nil
}

func canCheckOut(status string) error {
	if status != models.BookingStatusConfirmed {
		return fmt.Errorf("%w: booking must be confirmed before check-out", ErrInvalidState)
	}
	return nil
}

func canCancel(status string) error {
	if status != models.BookingStatusPending && status != models.BookingStatusConfirmed {
		return fmt.Errorf("%w: only pending or confirmed bookings can be cancelled", ErrInvalidState)
	}
	return nil
}

// ---------------------------
// Availability search
// ---------------------------

// SearchAvailableRooms returns every room with no Pending or Confirmed
// booking intersecting [checkIn, checkOut).
func (s *BookingService) SearchAvailableRooms(checkIn, checkOut time.Time) ([]models.Room, error) {
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check_in must be before check_out", ErrValidation)
	}

	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	var active []models.Booking
	if err := s.DB.
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Find(&active).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	byRoom := make(map[uint][]models.Booking, len(active))
	for _, b := range active {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if !hasConflict(byRoom[room.ID], checkIn, checkOut) {
			available = append(available, room)
		}
	}
	return available, nil
}

// ---------------------------
// Create
// ---------------------------

type CreateBookingInput struct {
	UserID        uint
	RoomID        uint
	CheckIn       time.Time
	CheckOut      time.Time
	TotalAmount   decimal.Decimal
	PaymentStatus string
}

// CreateBooking inserts a new Pending booking. The overlap check and the
// insert run in one transaction holding a FOR UPDATE lock on the room row,
// so two concurrent requests for the same room serialize and at most one
// commits.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if in.UserID == 0 || in.RoomID == 0 || in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: userId, roomId, checkIn and checkOut are required", ErrValidation)
	}
	if !in.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: totalAmount must be positive", ErrValidation)
	}
	if !in.CheckIn.Before(in.CheckOut) {
		return nil, fmt.Errorf("%w: check_in must be before check_out", ErrValidation)
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = models.PaymentStatusPending
	}
	if !models.IsValidPaymentStatus(in.PaymentStatus) {
		return nil, fmt.Errorf("%w: invalid payment status %q", ErrValidation, in.PaymentStatus)
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, in.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d not found", ErrValidation, in.UserID)
			}
			return fmt.Errorf("db error checking user %d: %w", in.UserID, err)
		}

		// The room row lock serializes concurrent bookings for this room.
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: room %d not found", ErrValidation, in.RoomID)
			}
			return fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
		}

		var active []models.Booking
		if err := tx.
			Where("room_id = ? AND status IN ?", in.RoomID,
				[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
			Find(&active).Error; err != nil {
			return fmt.Errorf("failed to load bookings for room %d: %w", in.RoomID, err)
		}
		if hasConflict(active, in.CheckIn, in.CheckOut) {
			return fmt.Errorf("%w: room %s unavailable for those dates", ErrConflict, room.RoomNumber)
		}

		booking = models.Booking{
			ReferenceCode: uuid.NewString(),
			UserID:        in.UserID,
			RoomID:        in.RoomID,
			CheckIn:       in.CheckIn,
			CheckOut:      in.CheckOut,
			Status:        models.BookingStatusPending,
			PaymentStatus: in.PaymentStatus,
			TotalAmount:   in.TotalAmount,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// ---------------------------
// Lifecycle transitions
// ---------------------------

func (s *BookingService) findBooking(tx *gorm.DB, id uint, lock bool) (*models.Booking, error) {
	var booking models.Booking
	q := tx
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return &booking, nil
}

// ConfirmBooking moves a booking to Confirmed. Confirming twice is an error.
func (s *BookingService) ConfirmBooking(id uint) (*models.Booking, error) {
	var booking *models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		bk, err := s.findBooking(tx, id, true)
		if err != nil {
			return err
		}
		if err := canConfirm(bk.Status); err != nil {
			return err
		}
		if err := tx.Model(bk).Update("status", models.BookingStatusConfirmed).Error; err != nil {
			return fmt.Errorf("failed to confirm booking %d: %w", id, err)
		}
		bk.Status = models.BookingStatusConfirmed
		booking = bk
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return booking, nil
}

// CheckInBooking requires a Confirmed booking and cascades the room into the
// booked status. The booking itself stays Confirmed until check-out.
func (s *BookingService) CheckInBooking(id uint) (*models.Booking, error) {
	var booking *models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		bk, err := s.findBooking(tx, id, true)
		if err != nil {
			return err
		}
		if err := canCheckIn(bk.Status); err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).
			Where("id = ?", bk.RoomID).
			Update("status", models.RoomStatusBooked).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", bk.RoomID, err)
		}
		booking = bk
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return booking, nil
}

// CheckOutBooking completes a Confirmed booking and cascades the room into
// the cleaning status.
func (s *BookingService) CheckOutBooking(id uint) (*models.Booking, error) {
	var booking *models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		bk, err := s.findBooking(tx, id, true)
		if err != nil {
			return err
		}
		if err := canCheckOut(bk.Status); err != nil {
			return err
		}
		if err := tx.Model(bk).Update("status", models.BookingStatusCompleted).Error; err != nil {
			return fmt.Errorf("failed to complete booking %d: %w", id, err)
		}
		if err := tx.Model(&models.Room{}).
			Where("id = ?", bk.RoomID).
			Update("status", models.RoomStatusCleaning).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", bk.RoomID, err)
		}
		bk.Status = models.BookingStatusCompleted
		booking = bk
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return booking, nil
}

// CancelBooking releases the dates of a Pending or Confirmed booking.
func (s *BookingService) CancelBooking(id uint) (*models.Booking, error) {
	var booking *models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		bk, err := s.findBooking(tx, id, true)
		if err != nil {
			return err
		}
		if err := canCancel(bk.Status); err != nil {
			return err
		}
		if err := tx.Model(bk).Update("status", models.BookingStatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking %d: %w", id, err)
		}
		bk.Status = models.BookingStatusCancelled
		booking = bk
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return booking, nil
}

// ---------------------------
// Projections
// ---------------------------

func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("User").
		Preload("Room").
		Order("check_in DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetUserBookings(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("user_id = ?", userID).
		Order("check_in DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for user %d: %w", userID, err)
	}
	return list, nil
}

// RoomStatusEntry is the GET /bookings/rooms/status projection.
type RoomStatusEntry struct {
	ID         uint   `gorm:"column:id" json:"id"`
	RoomNumber string `gorm:"column:room_number" json:"roomNumber"`
	Type       string `gorm:"column:type" json:"type"`
	Status     string `gorm:"column:status" json:"status"`
}

func (s *BookingService) GetAllRoomStatuses() ([]RoomStatusEntry, error) {
	var list []RoomStatusEntry
	if err := s.DB.Model(&models.Room{}).
		Select("id", "room_number", "type", "status").
		Order("room_number").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve room statuses: %w", err)
	}
	return list, nil
}
