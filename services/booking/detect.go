package booking

import "strings"

// Trigger vocabulary for booking intent. Matching is case-insensitive
// substring matching, so "booking" and "reschedule" hit through their stems.
var triggerKeywords = []string{
	"book",
	"schedule",
	"appointment",
	"interview",
	"reserve",
}

// HasBookingIntent reports whether the message looks like the start of (or a
// contribution to) an interview booking. Booking intent takes precedence over
// knowledge-base retrieval for the same message.
func HasBookingIntent(text string) bool {
	lowerText := strings.ToLower(text)
	for _, kw := range triggerKeywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}
