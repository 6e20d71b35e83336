// Package notify stores per-user notifications produced by queue transitions.
// Entries are never deleted; only the read flag changes.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tutoring_queue/internal/models"
)

type Sink struct {
	mu    sync.RWMutex
	items []*models.Notification
	now   func() time.Time
}

func NewSink() *Sink {
	return &Sink{now: time.Now}
}

// WithClock replaces the timestamp source. Used by tests.
func (s *Sink) WithClock(now func() time.Time) *Sink {
	s.now = now
	return s
}

func (s *Sink) Push(userID string, typ models.NotificationType, title, message string) models.Notification {
	if typ == "" {
		typ = models.NotifyInfo
	}
	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.items = append(s.items, n)
	s.mu.Unlock()
	return *n
}

// ForUser returns the user's notifications, newest first.
func (s *Sink) ForUser(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, 0)
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].UserID == userID {
			out = append(out, *s.items[i])
		}
	}
	return out
}

func (s *Sink) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.items {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flips the read flag of one of the user's notifications.
// It returns false if no such notification belongs to userID.
func (s *Sink) MarkRead(userID, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.items {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return true
		}
	}
	return false
}

// MarkAllRead returns how many notifications changed state.
func (s *Sink) MarkAllRead(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for _, n := range s.items {
		if n.UserID == userID && !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed
}
