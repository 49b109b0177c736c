package utils

import (
	"testing"
	"unicode/utf8"
)

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateRandomOTP()
		if len(otp) != 6 {
			t.Fatalf("OTP length = %d, want 6 (otp: %q)", len(otp), otp)
		}
		for _, c := range otp {
			if c < '0' || c > '9' {
				t.Fatalf("OTP contains non-digit character: %q", otp)
			}
		}
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	for _, length := range []int{8, 12, 20} {
		password := GenerateRandomPassword(length)
		if len([]rune(password)) != length {
			t.Errorf("password length = %d, want %d", len([]rune(password)), length)
		}
	}
}

func TestGenerateRandomEmployee(t *testing.T) {
	for i := 0; i < 100; i++ {
		employee, err := GenerateRandomEmployee()
		if err != nil {
			t.Fatalf("GenerateRandomEmployee() error = %v", err)
		}
		if n := utf8.RuneCountInString(employee.FullName().String()); n < 1 || n > 20 {
			t.Fatalf("full name length = %d, want 1..20 (name: %q)", n, employee.FullName())
		}
	}
}

func TestGenerateRandomManager(t *testing.T) {
	manager, err := GenerateRandomManager("password123", "example.com")
	if err != nil {
		t.Fatalf("GenerateRandomManager() error = %v", err)
	}
	if manager.Username == "" {
		t.Error("username is empty")
	}
	if manager.Email != manager.Username+"@example.com" {
		t.Errorf("email = %q, want username@example.com", manager.Email)
	}
	if manager.PasswordHash == "password123" {
		t.Error("password is stored without hashing")
	}
}
