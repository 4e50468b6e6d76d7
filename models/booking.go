package models

import "time"

// Booking represents a confirmed interview booking record.
// Immutable once persisted; owned by the relational store.
type Booking struct {
	ID        string    `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	Name      string    `bson:"name" json:"name"`             // Candidate name
	Email     string    `bson:"email" json:"email"`           // Candidate email
	Date      string    `bson:"date" json:"date"`             // Interview date in "YYYY-MM-DD" format
	Time      string    `bson:"time" json:"time"`             // Interview time in 24-hour "HH:MM" format
	SessionID string    `bson:"session_id" json:"session_id"` // Conversation session that produced the booking
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // Timestamp when booking was persisted
}

// PartialBooking accumulates slot values across turns while a session is
// collecting. It is complete when all four fields are non-empty; date and
// time are only ever stored in validated form.
type PartialBooking struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	SessionID string `json:"session_id"`
}

// Complete reports whether every slot has been filled.
func (p PartialBooking) Complete() bool {
	return p.Name != "" && p.Email != "" && p.Date != "" && p.Time != ""
}

// Missing lists the slots still to be filled, in a stable order.
func (p PartialBooking) Missing() []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.Date == "" {
		missing = append(missing, "date")
	}
	if p.Time == "" {
		missing = append(missing, "time")
	}
	return missing
}

// ReminderPayload is enqueued when a booking completes so a background worker
// can notify the candidate before the interview.
type ReminderPayload struct {
	BookingID string `json:"booking_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
