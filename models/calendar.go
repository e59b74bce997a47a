package models

// Calendar cell states, in rendering precedence order. Selected wins over
// everything; Past means the date falls inside the advance-notice window.
const (
	CalendarStateSelected  = "selected"
	CalendarStatePast      = "past"
	CalendarStateBlocked   = "blocked"
	CalendarStateFull      = "full"
	CalendarStateAvailable = "available"
)

// CalendarDay is one cell of the month grid shown to customers when picking
// a pickup date.
type CalendarDay struct {
	Date     string `json:"date"` // "2006-01-02"
	State    string `json:"state"`
	Reason   string `json:"reason,omitempty"` // populated for blocked cells
	Disabled bool   `json:"disabled"`
}
