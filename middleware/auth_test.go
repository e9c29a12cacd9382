package middleware

import (
	"testing"

	"hotel-management/models"
)

func TestRoleAllowed(t *testing.T) {
	if !RoleAllowed(models.RoleAdmin, models.RoleAdmin, models.RoleOwner) {
		t.Fatalf("admin should pass an admin/owner allow-list")
	}
	if RoleAllowed(models.RoleCustomer, models.RoleAdmin, models.RoleOwner, models.RoleStaff) {
		t.Fatalf("customer should not pass a staff allow-list")
	}
	if RoleAllowed("", models.RoleAdmin) {
		t.Fatalf("empty role should never pass")
	}
	if RoleAllowed(models.RoleAdmin) {
		t.Fatalf("empty allow-list should deny everything")
	}
}
