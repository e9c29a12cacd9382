package models

import "testing"

func TestIsValidRoomStatus(t *testing.T) {
	for _, status := range []string{"available", "booked", "occupied", "cleaning", "maintenance"} {
		if !IsValidRoomStatus(status) {
			t.Fatalf("%q should be a valid room status", status)
		}
	}
	// the transition code must use the lowercase enum values, never the
	// capitalized variants
	for _, status := range []string{"Booked", "Cleaning", "reserved", ""} {
		if IsValidRoomStatus(status) {
			t.Fatalf("%q should not be a valid room status", status)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{"admin", "owner", "staff", "customer"} {
		if !IsValidRole(role) {
			t.Fatalf("%q should be a valid role", role)
		}
	}
	for _, role := range []string{"manager", "Admin", ""} {
		if IsValidRole(role) {
			t.Fatalf("%q should not be a valid role", role)
		}
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, status := range []string{"Pending", "Paid", "Failed"} {
		if !IsValidPaymentStatus(status) {
			t.Fatalf("%q should be a valid payment status", status)
		}
	}
	if IsValidPaymentStatus("paid") {
		t.Fatalf("payment statuses are capitalized")
	}
}
