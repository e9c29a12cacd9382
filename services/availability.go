package services

import (
	"time"

	"hotel-management/models"
)

// rangesOverlap reports whether the half-open stays [aIn, aOut) and
// [bIn, bOut) intersect. Checking out on the day another booking checks in
// is not a conflict.
func rangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// blocksRoom reports whether a booking holds its room against new requests.
// Cancelled and Completed bookings release the dates.
func blocksRoom(status string) bool {
	return status == models.BookingStatusPending || status == models.BookingStatusConfirmed
}

// hasConflict reports whether any booking in the slice blocks the requested
// [checkIn, checkOut) stay.
func hasConflict(bookings []models.Booking, checkIn, checkOut time.Time) bool {
	for _, b := range bookings {
		if !blocksRoom(b.Status) {
			continue
		}
		if rangesOverlap(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}
