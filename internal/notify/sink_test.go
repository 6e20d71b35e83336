package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoring_queue/internal/models"
)

func TestPushAndForUser(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	s := NewSink().WithClock(func() time.Time { return at })

	first := s.Push("u1", models.NotifyQueueUpdate, "Joined Queue", "Position: #1")
	s.Push("u2", models.NotifyQueueUpdate, "Joined Queue", "Position: #2")
	s.Push("u1", "", "Hello", "Welcome")

	got := s.ForUser("u1")
	require.Len(t, got, 2)
	assert.Equal(t, "Hello", got[0].Title)
	assert.Equal(t, models.NotifyInfo, got[0].Type, "empty type defaults to info")
	assert.Equal(t, first.ID, got[1].ID)
	assert.Equal(t, at, got[1].Timestamp)
	assert.False(t, got[1].Read)
}

func TestUnreadAndMarkRead(t *testing.T) {
	s := NewSink()
	n1 := s.Push("u1", models.NotifyInfo, "a", "a")
	s.Push("u1", models.NotifyInfo, "b", "b")
	n3 := s.Push("u2", models.NotifyInfo, "c", "c")

	assert.Equal(t, 2, s.UnreadCount("u1"))

	assert.True(t, s.MarkRead("u1", n1.ID))
	assert.Equal(t, 1, s.UnreadCount("u1"))

	assert.False(t, s.MarkRead("u1", n3.ID), "cannot read someone else's notification")
	assert.False(t, s.MarkRead("u1", "missing"))
	assert.Equal(t, 1, s.UnreadCount("u2"))
}

func TestMarkAllRead_ScopedToUser(t *testing.T) {
	s := NewSink()
	s.Push("u1", models.NotifyInfo, "a", "a")
	s.Push("u1", models.NotifyInfo, "b", "b")
	s.Push("u2", models.NotifyInfo, "c", "c")

	assert.Equal(t, 2, s.MarkAllRead("u1"))
	assert.Equal(t, 0, s.MarkAllRead("u1"))
	assert.Equal(t, 0, s.UnreadCount("u1"))
	assert.Equal(t, 1, s.UnreadCount("u2"))
}
