package models

import "time"

// TimeLayout is the wall-clock format persisted in the records table.
// Second precision, no time zone, matching the reference schema's TEXT column.
const TimeLayout = "2006-01-02 15:04:05"

// Record is one classification event: it ties an account, a timestamp,
// a predicted category and the points awarded for it.
//
// Points are copied from the reward table at creation time and never
// recomputed, so a later policy change does not alter history.
type Record struct {
	// RecordID is the internal unique identifier of the event.
	RecordID int64 `json:"-"`

	// UserID is the owning account identifier.
	UserID int64 `json:"user_id"`

	// RecordedAt is the wall-clock creation time, second precision.
	RecordedAt time.Time `json:"recorded_at"`

	// Category is one of the six fixed material labels.
	Category string `json:"category"`

	// Points is the reward value frozen at creation time.
	Points int `json:"points"`
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "records"
}
