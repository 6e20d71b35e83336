package models

import (
	"time"
)

type EntryStatus string

const (
	StatusWaiting EntryStatus = "waiting"
	StatusServed  EntryStatus = "served"
	StatusNoShow  EntryStatus = "no-show"
)

// Terminal reports whether no further transition can leave s.
func (s EntryStatus) Terminal() bool {
	return s == StatusServed || s == StatusNoShow
}

type EntryPriority string

const (
	EntryNormal EntryPriority = "normal"
	EntryHigh   EntryPriority = "high"
)

func (p EntryPriority) Valid() bool {
	return p == EntryNormal || p == EntryHigh
}

type QueueEntry struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	ServiceID string        `json:"serviceId"`
	JoinedAt  time.Time     `json:"joinedAt"`
	Status    EntryStatus   `json:"status"`
	Priority  EntryPriority `json:"priority"`
	Position  int           `json:"position"` // 1..N among waiting entries of ServiceID
	Notes     string        `json:"notes,omitempty"`
}
