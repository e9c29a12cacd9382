package services

import (
	"testing"
	"time"

	"hotel-management/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	existingIn := date(2024, 6, 1)
	existingOut := date(2024, 6, 5)

	cases := []struct {
		name     string
		newIn    time.Time
		newOut   time.Time
		overlaps bool
	}{
		{"identical", date(2024, 6, 1), date(2024, 6, 5), true},
		{"partial tail", date(2024, 6, 3), date(2024, 6, 6), true},
		{"partial head", date(2024, 5, 30), date(2024, 6, 2), true},
		{"new inside existing", date(2024, 6, 2), date(2024, 6, 4), true},
		{"existing inside new", date(2024, 5, 30), date(2024, 6, 10), true},
		{"touching before", date(2024, 5, 28), date(2024, 6, 1), false},
		{"touching after", date(2024, 6, 5), date(2024, 6, 7), false},
		{"disjoint before", date(2024, 5, 1), date(2024, 5, 10), false},
		{"disjoint after", date(2024, 7, 1), date(2024, 7, 10), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rangesOverlap(existingIn, existingOut, tc.newIn, tc.newOut)
			if got != tc.overlaps {
				t.Fatalf("rangesOverlap([%s,%s), [%s,%s)) = %v, want %v",
					existingIn.Format("2006-01-02"), existingOut.Format("2006-01-02"),
					tc.newIn.Format("2006-01-02"), tc.newOut.Format("2006-01-02"),
					got, tc.overlaps)
			}
		})
	}
}

func TestHasConflict_OnlyPendingAndConfirmedBlock(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.BookingStatusCancelled, CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 5)},
		{Status: models.BookingStatusCompleted, CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 5)},
	}
	if hasConflict(bookings, date(2024, 6, 1), date(2024, 6, 5)) {
		t.Fatalf("cancelled and completed bookings must not block the room")
	}

	bookings = append(bookings, models.Booking{
		Status: models.BookingStatusPending, CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 5),
	})
	if !hasConflict(bookings, date(2024, 6, 1), date(2024, 6, 5)) {
		t.Fatalf("pending booking on identical dates must block the room")
	}
}

// Mirrors the documented example: R1 holds a confirmed booking for
// [2024-06-01, 2024-06-05). A search for [06-03, 06-06) must exclude R1,
// a search for [06-05, 06-07) must include it.
func TestHasConflict_BoundaryExample(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.BookingStatusConfirmed, CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 5)},
	}

	if !hasConflict(bookings, date(2024, 6, 3), date(2024, 6, 6)) {
		t.Fatalf("search [06-03, 06-06) should conflict with [06-01, 06-05)")
	}
	if hasConflict(bookings, date(2024, 6, 5), date(2024, 6, 7)) {
		t.Fatalf("search [06-05, 06-07) should not conflict with [06-01, 06-05)")
	}
}

func TestHasConflict_StrictContainment(t *testing.T) {
	// existing short booking strictly inside the requested range
	bookings := []models.Booking{
		{Status: models.BookingStatusConfirmed, CheckIn: date(2024, 6, 10), CheckOut: date(2024, 6, 12)},
	}
	if !hasConflict(bookings, date(2024, 6, 1), date(2024, 6, 30)) {
		t.Fatalf("request enclosing an existing booking must conflict")
	}
}
