package tasks

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/ledger"
	"tutoring_queue/internal/models"
	"tutoring_queue/internal/notify"
	"tutoring_queue/internal/queue"
)

func fixture(t *testing.T) (*catalog.Catalog, *queue.Store, *slog.Logger) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cat := catalog.New()
	require.NoError(t, cat.Load(
		models.Service{ID: "calc", Name: "Calculus Help", Description: "d", Category: "Math", ExpectedDuration: 25, IsOpen: true},
		models.Service{ID: "essay", Name: "Essay Review", Description: "d", Category: "Writing", ExpectedDuration: 30, IsOpen: true},
		models.Service{ID: "lab", Name: "Chem Lab", Description: "d", Category: "Science", ExpectedDuration: 40},
	))
	q := queue.New(cat, ledger.New(), notify.NewSink(), queue.WithLogger(logger))
	return cat, q, logger
}

func TestCloseAllServices_KeepsWaitingEntries(t *testing.T) {
	cat, q, logger := fixture(t)
	_, err := q.Join("u1", "calc", "", "")
	require.NoError(t, err)

	assert.Equal(t, 2, CloseAllServices(cat, logger))
	assert.Empty(t, cat.Open())
	assert.Equal(t, 1, q.WaitingCount("calc"))

	_, err = q.Join("u2", "calc", "", "")
	assert.ErrorIs(t, err, queue.ErrServiceClosed)

	served, err := q.ServeNext("calc")
	require.NoError(t, err)
	assert.Equal(t, "u1", served.UserID)

	assert.Equal(t, 0, CloseAllServices(cat, logger))
}

func TestInitScheduler(t *testing.T) {
	cat, q, logger := fixture(t)

	c, err := InitScheduler(Schedules{CloseServices: "0 0 20 * * *", QueueStats: "0 */15 * * * *"}, cat, q, logger)
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 2)

	_, err = InitScheduler(Schedules{CloseServices: "every evening", QueueStats: "0 */15 * * * *"}, cat, q, logger)
	assert.Error(t, err)
}

func TestLogQueueLoad(t *testing.T) {
	cat, q, logger := fixture(t)
	_, err := q.Join("u1", "essay", "", "")
	require.NoError(t, err)

	assert.NotPanics(t, func() { LogQueueLoad(cat, q, logger) })
}
