package domain

import "time"

// Row is one synchronized time slice of the day grid: a start timestamp
// plus the event each person starts at exactly that moment. Rows are
// derived on every read and hold no identity of their own.
type Row struct {
	At    time.Time
	Cells map[string]Event
}
