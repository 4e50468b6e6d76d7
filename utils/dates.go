package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for booking times (24-hour).
const TimeLayout = "15:04"

// DateAnchor renders the current-date context handed to the language model so
// that relative expressions ("tomorrow", "next Monday", "in 3 days") resolve
// against the server date instead of whatever the model assumes.
func DateAnchor(today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today is %s (%s).", today.Format(DateLayout), today.Weekday())
	fmt.Fprintf(&b, " Tomorrow is %s.", today.AddDate(0, 0, 1).Format(DateLayout))
	fmt.Fprintf(&b, " The day after tomorrow is %s.", today.AddDate(0, 0, 2).Format(DateLayout))
	b.WriteString(" The next seven days are:")
	for i := 1; i <= 7; i++ {
		d := today.AddDate(0, 0, i)
		fmt.Fprintf(&b, " %s=%s", d.Weekday(), d.Format(DateLayout))
	}
	b.WriteString(".")
	return b.String()
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a well-formed 24-hour HH:MM time.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
