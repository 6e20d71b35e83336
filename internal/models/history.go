package models

import "time"

type Outcome string

const (
	OutcomeServed    Outcome = "served"
	OutcomeNoShow    Outcome = "no-show"
	OutcomeCancelled Outcome = "cancelled"
)

// HistoryRecord is written once per terminal transition of a queue entry.
// ServiceName is a snapshot taken at the time of the outcome.
type HistoryRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ServiceID   string    `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`     // 2006-01-02
	JoinedAt    string    `json:"joinedAt"` // 15:04
	ServedAt    *string   `json:"servedAt"`
	WaitTime    *int      `json:"waitTime"` // minutes; nil unless served
	Outcome     Outcome   `json:"outcome"`
	RecordedAt  time.Time `json:"recordedAt"`
}
