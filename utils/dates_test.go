package utils

import (
	"strings"
	"testing"
	"time"
)

func TestDateAnchorResolvesRelativeDates(t *testing.T) {
	today := time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC)
	anchor := DateAnchor(today)

	if !strings.Contains(anchor, "Today is 2025-11-22 (Saturday)") {
		t.Fatalf("anchor missing today: %s", anchor)
	}
	if !strings.Contains(anchor, "Tomorrow is 2025-11-23") {
		t.Fatalf("anchor missing tomorrow: %s", anchor)
	}
	if !strings.Contains(anchor, "The day after tomorrow is 2025-11-24") {
		t.Fatalf("anchor missing day after tomorrow: %s", anchor)
	}
	// "next Monday" must be resolvable from the listed week.
	if !strings.Contains(anchor, "Monday=2025-11-24") {
		t.Fatalf("anchor missing upcoming Monday: %s", anchor)
	}
}

func TestValidDate(t *testing.T) {
	cases := map[string]bool{
		"2025-11-23": true,
		"2025-13-01": false,
		"tomorrow":   false,
		"23/11/2025": false,
		"":           false,
	}
	for input, want := range cases {
		if got := ValidDate(input); got != want {
			t.Errorf("ValidDate(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestValidTime(t *testing.T) {
	cases := map[string]bool{
		"14:00":   true,
		"09:30":   true,
		"2 PM":    false,
		"25:00":   false,
		"14:00:0": false,
		"":        false,
	}
	for input, want := range cases {
		if got := ValidTime(input); got != want {
			t.Errorf("ValidTime(%q) = %v, want %v", input, got, want)
		}
	}
}
