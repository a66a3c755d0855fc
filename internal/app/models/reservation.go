package models

import "time"

// Reservation is one fixed-duration laundry slot. Rows are append-only: they
// are inserted by the booking flow, removed by the retention janitor or an
// explicit cancellation, and never updated in place.
type Reservation struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	DateKey   string    `json:"dateKey" bson:"dateKey"`
	Time      string    `json:"time" bson:"time"`
	UserName  string    `json:"userName" bson:"userName"`
	UserPhone string    `json:"userPhone" bson:"userPhone"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
