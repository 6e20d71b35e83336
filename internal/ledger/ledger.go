// Package ledger keeps the append-only record of terminal queue outcomes.
package ledger

import (
	"math"
	"sync"

	"tutoring_queue/internal/models"
)

// Ledger is safe for concurrent use. Records are never modified after Append.
type Ledger struct {
	mu      sync.RWMutex
	records []models.HistoryRecord
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(rec models.HistoryRecord) {
	l.mu.Lock()
	l.records = append(l.records, rec)
	l.mu.Unlock()
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// All returns every record, newest first.
func (l *Ledger) All() []models.HistoryRecord {
	return l.filter(func(models.HistoryRecord) bool { return true })
}

// ForUser returns the user's records, newest first.
func (l *Ledger) ForUser(userID string) []models.HistoryRecord {
	return l.filter(func(r models.HistoryRecord) bool { return r.UserID == userID })
}

func (l *Ledger) filter(keep func(models.HistoryRecord) bool) []models.HistoryRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.HistoryRecord, 0)
	for i := len(l.records) - 1; i >= 0; i-- {
		if keep(l.records[i]) {
			out = append(out, l.records[i])
		}
	}
	return out
}

// UserSummary is what the student dashboard shows.
type UserSummary struct {
	Served      int `json:"served"`
	AvgWaitTime int `json:"avgWaitTime"`
}

// UserSummary averages only records that carry a non-zero wait time.
func (l *Ledger) UserSummary(userID string) UserSummary {
	records := l.ForUser(userID)

	var s UserSummary
	var total, counted int
	for _, r := range records {
		if r.Outcome == models.OutcomeServed {
			s.Served++
		}
		if r.WaitTime != nil && *r.WaitTime > 0 {
			total += *r.WaitTime
			counted++
		}
	}
	if counted > 0 {
		s.AvgWaitTime = int(math.Round(float64(total) / float64(counted)))
	}
	return s
}

// DaySummary aggregates the outcomes recorded on one date.
type DaySummary struct {
	Date        string `json:"date"`
	Served      int    `json:"served"`
	NoShows     int    `json:"noShows"`
	Cancelled   int    `json:"cancelled"`
	AvgWaitTime int    `json:"avgWaitTime"`
	NoShowRate  int    `json:"noShowRate"` // percent of served + no-show
}

func (l *Ledger) DaySummary(date string) DaySummary {
	records := l.filter(func(r models.HistoryRecord) bool { return r.Date == date })

	s := DaySummary{Date: date}
	var total int
	for _, r := range records {
		switch r.Outcome {
		case models.OutcomeServed:
			s.Served++
			if r.WaitTime != nil {
				total += *r.WaitTime
			}
		case models.OutcomeNoShow:
			s.NoShows++
		case models.OutcomeCancelled:
			s.Cancelled++
		}
	}
	if s.Served > 0 {
		s.AvgWaitTime = int(math.Round(float64(total) / float64(s.Served)))
	}
	if attended := s.Served + s.NoShows; attended > 0 {
		s.NoShowRate = int(math.Round(float64(s.NoShows) * 100 / float64(attended)))
	}
	return s
}
