package booking

import "testing"

func TestHasBookingIntent(t *testing.T) {
	cases := map[string]bool{
		"I want to book an interview":          true,
		"Can we schedule a call for tomorrow?": true,
		"Please set up an appointment":         true,
		"I'd like an interview slot":           true,
		"Reserve a time for me":                true,
		"I need to RESCHEDULE my booking":      true,
		"What does the refund policy say?":     false,
		"Tell me about the company":            false,
		"My name is John Doe":                  false,
	}
	for input, want := range cases {
		if got := HasBookingIntent(input); got != want {
			t.Errorf("HasBookingIntent(%q) = %v, want %v", input, got, want)
		}
	}
}
