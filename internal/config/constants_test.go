package config

import "testing"

func TestConstants(t *testing.T) {
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if DBTimeout <= 0 {
		t.Fatalf("DBTimeout must be positive")
	}
	if DefaultSessionHours <= 0 || DefaultSessionHours > MaxSessionHours {
		t.Fatalf("DefaultSessionHours out of range")
	}
	if MaxVisibleSessions <= 0 || MaxShortfallsDisplayed <= 0 {
		t.Fatalf("display limits must be positive")
	}
}
