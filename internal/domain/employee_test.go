package domain

import "testing"

func TestEmployee(t *testing.T) {
	fullName, _ := NewEmployeeFullName("佐藤 花子")

	t.Run("create", func(t *testing.T) {
		employee := NewEmployee(fullName, EmployeeTypeRegular)

		if employee.ID().String() == "" {
			t.Fatal("expected generated ID")
		}
		if employee.FullName() != fullName {
			t.Fatalf("expected %s, got %s", fullName, employee.FullName())
		}
		if !employee.Type().IsRegular() {
			t.Fatal("expected regular employee")
		}
	})

	t.Run("update full name", func(t *testing.T) {
		employee := NewEmployee(fullName, EmployeeTypeRegular)

		newName, _ := NewEmployeeFullName("佐藤 梅子")
		employee.UpdateFullName(newName)

		if employee.FullName() != newName {
			t.Fatalf("expected %s, got %s", newName, employee.FullName())
		}
	})

	t.Run("update type", func(t *testing.T) {
		employee := NewEmployee(fullName, EmployeeTypeRegular)

		employee.UpdateType(EmployeeTypeDispatched)

		if !employee.Type().IsDispatched() {
			t.Fatal("expected dispatched employee after update")
		}
	})

	t.Run("reconstruct keeps identity", func(t *testing.T) {
		id := NewEmployeeID()
		employee := ReconstructEmployee(id, fullName, EmployeeTypeDispatched, 3)

		if employee.ID() != id {
			t.Fatalf("expected %s, got %s", id, employee.ID())
		}
		if employee.Version() != 3 {
			t.Fatalf("expected version 3, got %d", employee.Version())
		}
	})
}
