package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.example.com", false},
		{"user@examplecom", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidEmail(c.email); got != c.want {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestIsComplexPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Abcdef1!", true},
		{"abcdef1!", false}, // no upper
		{"ABCDEF1!", false}, // no lower
		{"Abcdefg!", false}, // no digit
		{"Abcdefg1", false}, // no special
		{"Ab1!", false},     // too short
	}
	for _, c := range cases {
		if got := IsComplexPassword(c.password); got != c.want {
			t.Fatalf("IsComplexPassword(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}
