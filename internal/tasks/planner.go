package tasks

import (
	"log/slog"

	"github.com/robfig/cron/v3"

	"tutoring_queue/internal/catalog"
	"tutoring_queue/internal/queue"
)

// Schedules are six-field cron specs (seconds first).
type Schedules struct {
	CloseServices string
	QueueStats    string
}

// CloseAllServices closes every open service. People already waiting stay
// in line and can still be served.
func CloseAllServices(cat *catalog.Catalog, logger *slog.Logger) int {
	closed := 0
	for _, s := range cat.Open() {
		if err := cat.SetOpen(s.ID, false); err != nil {
			logger.Error("tasks: close service", "service", s.ID, "err", err)
			continue
		}
		closed++
	}
	logger.Info("tasks: services closed for the day", "closed", closed)
	return closed
}

// LogQueueLoad writes the number of people waiting per open service.
func LogQueueLoad(cat *catalog.Catalog, q *queue.Store, logger *slog.Logger) {
	for _, s := range cat.List() {
		if n := q.WaitingCount(s.ID); n > 0 || s.IsOpen {
			logger.Info("tasks: queue load", "service", s.ID, "name", s.Name, "open", s.IsOpen, "waiting", n)
		}
	}
	logger.Info("tasks: total waiting", "waiting", q.TotalWaiting())
}

// InitScheduler registers the periodic jobs and starts the cron runner.
func InitScheduler(sched Schedules, cat *catalog.Catalog, q *queue.Store, logger *slog.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(sched.CloseServices, func() { CloseAllServices(cat, logger) }); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(sched.QueueStats, func() { LogQueueLoad(cat, q, logger) }); err != nil {
		return nil, err
	}

	c.Start()
	logger.Info("tasks: cron scheduler started", "close", sched.CloseServices, "stats", sched.QueueStats)
	return c, nil
}
