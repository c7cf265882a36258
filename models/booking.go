package models

import "time"

// Booking lifecycle statuses.
const (
	BookingStatusPending      = "pending"
	BookingStatusApproved     = "approved"
	BookingStatusInProduction = "in_production"
	BookingStatusDelivered    = "delivered"
	BookingStatusPostponed    = "postponed"
	BookingStatusArchived     = "archived"
	BookingStatusDeleted      = "deleted"
)

// Booking represents a confirmed audiobook production booking.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`                           // book title
	Author    string    `bson:"author,omitempty" json:"author,omitempty"`     // book author
	Narrator  string    `bson:"narrator,omitempty" json:"narrator,omitempty"` // assigned narrator
	StartDate string    `bson:"start_date" json:"start_date"`                 // "YYYY-MM-DD"
	EndDate   string    `bson:"end_date" json:"end_date"`                     // "YYYY-MM-DD"
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
