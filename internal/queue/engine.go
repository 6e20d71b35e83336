package queue

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"tutoring_queue/internal/models"
)

const displayTime = "15:04"

// Direction is the way an admin moves an entry within its queue.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Up, Down:
		return d, nil
	}
	return "", ErrInvalidDirection
}

// Join appends a waiting entry for userID at the end of the service's queue.
// An empty priority means normal.
func (s *Store) Join(userID, serviceID, notes string, priority models.EntryPriority) (models.QueueEntry, error) {
	if priority == "" {
		priority = models.EntryNormal
	}
	if !priority.Valid() {
		return models.QueueEntry{}, ErrInvalidPriority
	}

	svc, ok := s.services.Service(serviceID)
	if !ok {
		return models.QueueEntry{}, ErrServiceNotFound
	}
	if !svc.IsOpen {
		return models.QueueEntry{}, ErrServiceClosed
	}

	q := s.queue(serviceID)
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.waiting {
		if e.UserID == userID {
			return models.QueueEntry{}, ErrAlreadyQueued
		}
	}

	entry := &models.QueueEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		ServiceID: serviceID,
		JoinedAt:  s.now(),
		Status:    models.StatusWaiting,
		Priority:  priority,
		Position:  len(q.waiting) + 1,
		Notes:     notes,
	}
	q.waiting = append(q.waiting, entry)
	s.track(entry.ID, serviceID)

	s.notifier.Push(userID, models.NotifyQueueUpdate, "Joined Queue",
		fmt.Sprintf("You joined the queue for %s. Position: #%d", svc.Name, entry.Position))

	s.logger.Info("queue: joined", "service", serviceID, "user", userID, "entry", entry.ID, "position", entry.Position)
	return *entry, nil
}

// Leave removes a waiting entry at the student's request and logs it as
// cancelled. Unknown or already finished entries are ignored. The returned
// entry is the last waiting snapshot; the outcome lives in the ledger.
func (s *Store) Leave(entryID string) (models.QueueEntry, bool) {
	q := s.owner(entryID)
	if q == nil {
		return models.QueueEntry{}, false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(entryID)
	if i < 0 {
		return models.QueueEntry{}, false
	}
	entry := q.remove(i)
	s.untrack(entryID)
	s.record(entry, models.OutcomeCancelled, s.now())

	s.logger.Info("queue: left", "service", entry.ServiceID, "user", entry.UserID, "entry", entryID, "position", entry.Position)
	return *entry, true
}

// ServeNext completes the entry at position 1 and tells the new head of the
// line that their turn is close.
func (s *Store) ServeNext(serviceID string) (models.QueueEntry, error) {
	q := s.existing(serviceID)
	if q == nil {
		return models.QueueEntry{}, ErrQueueEmpty
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.waiting) == 0 {
		return models.QueueEntry{}, ErrQueueEmpty
	}

	served := q.remove(0)
	served.Status = models.StatusServed
	s.untrack(served.ID)
	rec := s.record(served, models.OutcomeServed, s.now())

	s.notifier.Push(served.UserID, models.NotifyStatusChange, "Now Serving",
		fmt.Sprintf("It's your turn for %s. Please head to the tutor.", rec.ServiceName))
	if len(q.waiting) > 0 {
		next := q.waiting[0]
		s.notifier.Push(next.UserID, models.NotifyQueueUpdate, "Almost Your Turn!",
			fmt.Sprintf("You are next in line for %s. Please be ready.", rec.ServiceName))
	}

	s.logger.Info("queue: served", "service", serviceID, "user", served.UserID, "entry", served.ID, "wait_minutes", *rec.WaitTime)
	return *served, nil
}

// MarkNoShow retires a waiting entry whose student did not appear. Entries
// ahead of it keep their positions.
func (s *Store) MarkNoShow(entryID string) (models.QueueEntry, bool) {
	q := s.owner(entryID)
	if q == nil {
		return models.QueueEntry{}, false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(entryID)
	if i < 0 {
		return models.QueueEntry{}, false
	}
	entry := q.remove(i)
	entry.Status = models.StatusNoShow
	s.untrack(entryID)
	rec := s.record(entry, models.OutcomeNoShow, s.now())

	s.notifier.Push(entry.UserID, models.NotifyStatusChange, "Marked as No-Show",
		fmt.Sprintf("You were marked as a no-show for %s.", rec.ServiceName))

	s.logger.Info("queue: no-show", "service", entry.ServiceID, "user", entry.UserID, "entry", entryID, "position", entry.Position)
	return *entry, true
}

// Reorder swaps an entry's position with its neighbour in the given
// direction. It reports false when nothing moved: unknown entry, bad
// direction, or the entry is already at that end of the queue.
func (s *Store) Reorder(serviceID, entryID string, dir Direction) bool {
	q := s.existing(serviceID)
	if q == nil {
		return false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(entryID)
	if i < 0 {
		return false
	}

	var j int
	switch dir {
	case Up:
		j = i - 1
	case Down:
		j = i + 1
	default:
		return false
	}
	if j < 0 || j >= len(q.waiting) {
		return false
	}

	q.waiting[i], q.waiting[j] = q.waiting[j], q.waiting[i]
	q.waiting[i].Position, q.waiting[j].Position = q.waiting[j].Position, q.waiting[i].Position

	s.logger.Info("queue: reordered", "service", serviceID, "entry", entryID, "direction", dir, "position", q.waiting[j].Position)
	return true
}

// record appends the history record for a terminal transition of e.
func (s *Store) record(e *models.QueueEntry, outcome models.Outcome, at time.Time) models.HistoryRecord {
	name := "Unknown"
	if svc, ok := s.services.Service(e.ServiceID); ok {
		name = svc.Name
	}

	rec := models.HistoryRecord{
		ID:          uuid.NewString(),
		UserID:      e.UserID,
		ServiceID:   e.ServiceID,
		ServiceName: name,
		Date:        at.Format(time.DateOnly),
		JoinedAt:    e.JoinedAt.Format(displayTime),
		Outcome:     outcome,
		RecordedAt:  at,
	}
	if outcome == models.OutcomeServed {
		servedAt := at.Format(displayTime)
		wait := int(math.Round(at.Sub(e.JoinedAt).Minutes()))
		if wait < 0 {
			wait = 0
		}
		rec.ServedAt = &servedAt
		rec.WaitTime = &wait
	}

	s.history.Append(rec)
	return rec
}
