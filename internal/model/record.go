package model

import (
	"strconv"
	"time"
)

// Record is the domain model for a todo entry.
// ID is fixed at creation; an edit only ever touches Value.
type Record struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// NewID derives a record id from the creation time in Unix milliseconds.
// Two records created in the same millisecond share an id.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Index returns the position of the record with the given id, or -1.
func Index(records []Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
