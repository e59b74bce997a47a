package models

import "time"

// BlockedInterval is an operator-defined window during which no new orders
// may be scheduled. Either the whole day is blocked, or a single time range
// within it. Multiple intervals may exist for the same date.
type BlockedInterval struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"`                             // "2006-01-02"
	WholeDay  bool      `bson:"whole_day" json:"wholeDay"`                    // blocks every slot on Date
	StartTime string    `bson:"start_time,omitempty" json:"startTime,omitempty"` // "HH:MM", inclusive; set when WholeDay is false
	EndTime   string    `bson:"end_time,omitempty" json:"endTime,omitempty"`     // "HH:MM", inclusive
	Reason    string    `bson:"reason" json:"reason"` // surfaced to customers and admins
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// AvailabilityVerdict is the evaluator's answer for a single (date) or
// (date, time) query. Derived, never persisted.
type AvailabilityVerdict struct {
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason,omitempty"`
}
