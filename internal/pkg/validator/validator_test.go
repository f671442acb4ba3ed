package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) = false, want true")
	}
	invalid := []string{"2024-13-01", "2024-2-9", "20240229", "", "yesterday"}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"08:00", "8:00", "23:59", "00:00"}
	invalid := []string{"24:00", "12:60", "0800", "8", "", "8:0"}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestClockToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"08:00", 480},
		{"09:15", 555},
		{"18:00", 1080},
		{"20:30", 1230},
		{"00:00", 0},
		{"9", 540},   // tolerated legacy shape
		{"9:", 540},  // missing minutes counts as zero
		{"bad", 0},
	}
	for _, c := range cases {
		got := ClockToMinutes(c.input)
		if got != c.want {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}
