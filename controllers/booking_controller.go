// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	UserID        uint            `json:"userId" binding:"required"`
	RoomID        uint            `json:"roomId" binding:"required"`
	CheckIn       string          `json:"checkIn" binding:"required"`
	CheckOut      string          `json:"checkOut" binding:"required"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentStatus string          `json:"paymentStatus"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// SearchAvailableRooms handles GET /bookings/search?checkIn=&checkOut=
func (ctrl *BookingController) SearchAvailableRooms(c *gin.Context) {
	rawIn := c.Query("checkIn")
	rawOut := c.Query("checkOut")
	if rawIn == "" || rawOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "checkIn and checkOut query parameters are required")
		return
	}

	checkIn, err := parseDate(rawIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "invalid checkIn date")
		return
	}
	checkOut, err := parseDate(rawOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "invalid checkOut date")
		return
	}

	rooms, err := ctrl.BookingSvc.SearchAvailableRooms(checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateBooking handles POST /bookings.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err.Error())
		return
	}

	checkIn, err := parseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "invalid checkIn date")
		return
	}
	checkOut, err := parseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "invalid checkOut date")
		return
	}

	// customers book for themselves; staff roles may book on behalf of
	// any user
	callerID, role := currentUser(c)
	if role == models.RoleCustomer && payload.UserID != callerID {
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "customers may only book for themselves")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingInput{
		UserID:        payload.UserID,
		RoomID:        payload.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   payload.TotalAmount,
		PaymentStatus: payload.PaymentStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings handles GET /bookings.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAllBookings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetUserBookings handles GET /bookings/user/:userId. Customers may only
// read their own history; staff roles may read anyone's.
func (ctrl *BookingController) GetUserBookings(c *gin.Context) {
	targetID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	callerID, role := currentUser(c)
	if role == models.RoleCustomer && callerID != targetID {
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "customers may only view their own bookings")
		return
	}

	bookings, err := ctrl.BookingSvc.GetUserBookings(targetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// ConfirmBooking handles PUT /bookings/:id/confirm.
func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.ConfirmBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckInBooking handles PUT /bookings/:id/checkin.
func (ctrl *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CheckInBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckOutBooking handles PUT /bookings/:id/checkout.
func (ctrl *BookingController) CheckOutBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CheckOutBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking handles PUT /bookings/:id/cancel.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CancelBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetRoomStatuses handles GET /bookings/rooms/status.
func (ctrl *BookingController) GetRoomStatuses(c *gin.Context) {
	statuses, err := ctrl.BookingSvc.GetAllRoomStatuses()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, statuses)
}
