package entity

import (
	"testing"
	"time"
)

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleCustomer, RoleProvider} {
		if !role.Valid() {
			t.Errorf("Role(%q).Valid() = false, want true", role)
		}
	}
	for _, role := range []Role{"", "4", "admin"} {
		if role.Valid() {
			t.Errorf("Role(%q).Valid() = true, want false", role)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{StatusPending, StatusShipped, StatusDelivered, StatusCancelled} {
		if !status.Valid() {
			t.Errorf("OrderStatus(%q).Valid() = false, want true", status)
		}
	}
	for _, status := range []OrderStatus{"", "pending", "Returned"} {
		if status.Valid() {
			t.Errorf("OrderStatus(%q).Valid() = true, want false", status)
		}
	}
}

func TestCreatedAtString(t *testing.T) {
	o := &Order{}
	if got := o.CreatedAtString(); got != "Not Available" {
		t.Errorf("zero CreatedAtString = %q, want %q", got, "Not Available")
	}

	o.CreatedAt = time.Date(2026, 8, 29, 13, 45, 7, 0, time.UTC)
	if got := o.CreatedAtString(); got != "2026-08-29 13:45:07" {
		t.Errorf("CreatedAtString = %q", got)
	}
}
