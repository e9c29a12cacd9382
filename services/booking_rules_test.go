package services

import (
	"errors"
	"testing"

	"hotel-management/models"
)

func TestCanConfirm(t *testing.T) {
	if err := canConfirm(models.BookingStatusPending); err != nil {
		t.Fatalf("confirming a pending booking should succeed, got %v", err)
	}
	err := canConfirm(models.BookingStatusConfirmed)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("confirming twice should be ErrInvalidState, got %v", err)
	}
}

func TestCanCheckIn(t *testing.T) {
	if err := canCheckIn(models.BookingStatusConfirmed); err != nil {
		t.Fatalf("check-in on a confirmed booking should succeed, got %v", err)
	}
	for _, status := range []string{
		models.BookingStatusPending,
		models.BookingStatusCancelled,
		models.BookingStatusCompleted,
	} {
		if err := canCheckIn(status); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("check-in on %s booking should be ErrInvalidState, got %v", status, err)
		}
	}
}

func TestCanCheckOut(t *testing.T) {
	if err := canCheckOut(models.BookingStatusConfirmed); err != nil {
		t.Fatalf("check-out on a confirmed booking should succeed, got %v", err)
	}
	if err := canCheckOut(models.BookingStatusPending); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("check-out on a pending booking should be ErrInvalidState, got %v", err)
	}
}

func TestCanCancel(t *testing.T) {
	for _, status := range []string{models.BookingStatusPending, models.BookingStatusConfirmed} {
		if err := canCancel(status); err != nil {
			t.Fatalf("cancelling a %s booking should succeed, got %v", status, err)
		}
	}
	for _, status := range []string{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		if err := canCancel(status); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("cancelling a %s booking should be ErrInvalidState, got %v", status, err)
		}
	}
}
