// Package queue is the tutoring queue state engine.
//
// A Store owns every queue entry across all services. For each service the
// waiting entries hold positions exactly 1..N, and every mutating operation
// restores that before it returns. Each service has its own mutex, so
// operations on one service run one at a time while different services
// proceed independently. Ledger and notification writes happen inside the
// same critical section as the renumbering they describe.
package queue

import (
	"log/slog"
	"sync"
	"time"

	"tutoring_queue/internal/models"
)

// ServiceLookup resolves the catalog fields the engine reads.
type ServiceLookup interface {
	Service(id string) (models.Service, bool)
}

// HistoryAppender receives one record per terminal transition.
type HistoryAppender interface {
	Append(rec models.HistoryRecord)
}

// Notifier receives the per-user messages emitted by transitions.
type Notifier interface {
	Push(userID string, typ models.NotificationType, title, message string) models.Notification
}

type Store struct {
	services ServiceLookup
	history  HistoryAppender
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.RWMutex
	queues map[string]*serviceQueue

	// index maps waiting entry ids to their service id.
	// Lock order: serviceQueue.mu before idxMu, never the reverse.
	idxMu sync.RWMutex
	index map[string]string
}

// serviceQueue holds the waiting entries of one service ordered by
// position, so waiting[i].Position == i+1.
type serviceQueue struct {
	mu      sync.Mutex
	waiting []*models.QueueEntry
}

func New(services ServiceLookup, history HistoryAppender, notifier Notifier, opts ...Option) *Store {
	s := &Store{
		services: services,
		history:  history,
		notifier: notifier,
		logger:   slog.Default(),
		now:      time.Now,
		queues:   make(map[string]*serviceQueue),
		index:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// queue returns the queue for serviceID, creating it if needed.
func (s *Store) queue(serviceID string) *serviceQueue {
	s.mu.RLock()
	q, ok := s.queues[serviceID]
	s.mu.RUnlock()
	if ok {
		return q
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if q, ok = s.queues[serviceID]; !ok {
		q = &serviceQueue{}
		s.queues[serviceID] = q
	}
	return q
}

// existing returns the queue for serviceID or nil.
func (s *Store) existing(serviceID string) *serviceQueue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queues[serviceID]
}

func (s *Store) all() []*serviceQueue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*serviceQueue, 0, len(s.queues))
	for _, q := range s.queues {
		out = append(out, q)
	}
	return out
}

// owner finds the queue currently holding a waiting entry. The caller must
// re-check membership after locking the returned queue.
func (s *Store) owner(entryID string) *serviceQueue {
	s.idxMu.RLock()
	serviceID, ok := s.index[entryID]
	s.idxMu.RUnlock()
	if !ok {
		return nil
	}
	return s.existing(serviceID)
}

func (s *Store) track(entryID, serviceID string) {
	s.idxMu.Lock()
	s.index[entryID] = serviceID
	s.idxMu.Unlock()
}

func (s *Store) untrack(entryID string) {
	s.idxMu.Lock()
	delete(s.index, entryID)
	s.idxMu.Unlock()
}

func (q *serviceQueue) indexOf(entryID string) int {
	for i, e := range q.waiting {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

// remove drops waiting[i] and moves every later entry up by one.
func (q *serviceQueue) remove(i int) *models.QueueEntry {
	e := q.waiting[i]
	last := len(q.waiting) - 1
	copy(q.waiting[i:], q.waiting[i+1:])
	q.waiting[last] = nil
	q.waiting = q.waiting[:last]
	for _, later := range q.waiting[i:] {
		later.Position--
	}
	return e
}

func (q *serviceQueue) snapshot() []models.QueueEntry {
	out := make([]models.QueueEntry, len(q.waiting))
	for i, e := range q.waiting {
		out[i] = *e
	}
	return out
}
