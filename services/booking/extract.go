package booking

import (
	"fmt"
	"strings"
	"time"

	"ragtask/models"
	"ragtask/utils"
)

// extractionPrompt asks the model for the four booking slots as strict JSON,
// anchored to the server date so relative expressions resolve deterministically.
func extractionPrompt(history []models.Turn, query string, now time.Time) string {
	var b strings.Builder
	b.WriteString("You extract interview booking details from a conversation.\n")
	b.WriteString(utils.DateAnchor(now))
	b.WriteString("\n\n")

	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Text)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Latest user message: %s\n\n", query)

	b.WriteString("Return ONLY a JSON object with exactly these keys:\n")
	b.WriteString(`{"name": "", "email": "", "date": "", "time": ""}` + "\n")
	b.WriteString("Rules:\n")
	b.WriteString("- name: the person's full name, or \"\" if not mentioned.\n")
	b.WriteString("- email: the person's email address, or \"\" if not mentioned.\n")
	b.WriteString("- date: the interview date in YYYY-MM-DD, resolving relative expressions against the dates above, or \"\" if not mentioned.\n")
	b.WriteString("- time: the interview time in 24-hour HH:MM, or \"\" if not mentioned.\n")
	b.WriteString("- Use \"\" when a value is ambiguous. Never guess.\n")
	return b.String()
}

// mergeFields folds extracted values into the partial record. Previously
// filled slots are kept unless the extraction produced a new non-empty value
// (last-non-empty-wins). Malformed dates and times are dropped, never stored.
func mergeFields(partial models.PartialBooking, fields map[string]string) models.PartialBooking {
	if v := cleanField(fields["name"]); v != "" {
		partial.Name = v
	}
	if v := cleanField(fields["email"]); v != "" && strings.Contains(v, "@") {
		partial.Email = v
	}
	if v := cleanField(fields["date"]); v != "" && utils.ValidDate(v) {
		partial.Date = v
	}
	if v := cleanField(fields["time"]); v != "" && utils.ValidTime(v) {
		partial.Time = v
	}
	return partial
}

// cleanField trims whitespace and filters the placeholder values models emit
// for unknown slots.
func cleanField(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "null", "none", "n/a", "unknown", "not mentioned":
		return ""
	}
	return v
}
