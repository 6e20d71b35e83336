package queue

import "errors"

var (
	// Join errors.
	ErrAlreadyQueued   = errors.New("queue: user already waiting for this service")
	ErrServiceNotFound = errors.New("queue: service not found")
	ErrServiceClosed   = errors.New("queue: service is closed")
	ErrInvalidPriority = errors.New("queue: invalid priority")

	// Admin errors.
	ErrQueueEmpty       = errors.New("queue: no one is waiting")
	ErrInvalidDirection = errors.New("queue: direction must be up or down")
)
