package queue

import (
	"sort"

	"tutoring_queue/internal/models"
)

// QueueForService returns the service's waiting entries in position order.
func (s *Store) QueueForService(serviceID string) []models.QueueEntry {
	q := s.existing(serviceID)
	if q == nil {
		return []models.QueueEntry{}
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot()
}

// EstimatedWait is position × the service's expected session length, in
// minutes. Unknown services estimate 0.
func (s *Store) EstimatedWait(serviceID string, position int) int {
	svc, ok := s.services.Service(serviceID)
	if !ok {
		return 0
	}
	return position * svc.ExpectedDuration
}

// UserActiveQueues returns every waiting entry owned by userID, oldest
// join first.
func (s *Store) UserActiveQueues(userID string) []models.QueueEntry {
	out := make([]models.QueueEntry, 0)
	for _, q := range s.all() {
		q.mu.Lock()
		for _, e := range q.waiting {
			if e.UserID == userID {
				out = append(out, *e)
			}
		}
		q.mu.Unlock()
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].ServiceID < out[j].ServiceID
		}
		return out[i].JoinedAt.Before(out[j].JoinedAt)
	})
	return out
}

// UserEntry returns userID's waiting entry for serviceID, if any.
func (s *Store) UserEntry(userID, serviceID string) (models.QueueEntry, bool) {
	q := s.existing(serviceID)
	if q == nil {
		return models.QueueEntry{}, false
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	for _, e := range q.waiting {
		if e.UserID == userID {
			return *e, true
		}
	}
	return models.QueueEntry{}, false
}

// Entry looks up a waiting entry by id.
func (s *Store) Entry(entryID string) (models.QueueEntry, bool) {
	q := s.owner(entryID)
	if q == nil {
		return models.QueueEntry{}, false
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if i := q.indexOf(entryID); i >= 0 {
		return *q.waiting[i], true
	}
	return models.QueueEntry{}, false
}

func (s *Store) WaitingCount(serviceID string) int {
	q := s.existing(serviceID)
	if q == nil {
		return 0
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiting)
}

func (s *Store) TotalWaiting() int {
	total := 0
	for _, q := range s.all() {
		q.mu.Lock()
		total += len(q.waiting)
		q.mu.Unlock()
	}
	return total
}
