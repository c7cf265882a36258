package models

import "time"

// Bookout types. A "personal" bookout is admin-declared time off; a "ghost"
// bookout is a synthetic placeholder produced by the ghost generator.
const (
	BookoutTypePersonal = "personal"
	BookoutTypeGhost    = "ghost"
)

// Bookout is a generic calendar block in the bookouts collection.
type Bookout struct {
	ID        string    `bson:"id" json:"id"`
	Reason    string    `bson:"reason" json:"reason"`
	Type      string    `bson:"type" json:"type"`             // "personal" or "ghost"
	StartDate string    `bson:"start_date" json:"start_date"` // "YYYY-MM-DD"
	EndDate   string    `bson:"end_date" json:"end_date"`     // "YYYY-MM-DD"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
