// Package scheduler wraps cron for the bot's delayed jobs.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs delayed one-shot jobs on a shared cron instance.
type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// ScheduleAfter runs job once after the given delay. The entry removes
// itself after the first run so the cron table does not grow.
func (s *Scheduler) ScheduleAfter(delay time.Duration, job func()) (cron.EntryID, error) {
	if delay <= 0 {
		return 0, fmt.Errorf("delay must be positive")
	}
	seconds := int(delay.Seconds())
	if seconds <= 0 {
		seconds = 1
	}

	// The entry ID is only known after AddFunc returns, but the running
	// cron goroutine may fire the job as soon as the entry reaches it.
	// The mutex orders the ID assignment before the job's read of it.
	var mu sync.Mutex
	var id cron.EntryID
	mu.Lock()
	spec := fmt.Sprintf("@every %ds", seconds)
	entryID, err := s.cron.AddFunc(spec, func() {
		mu.Lock()
		entry := id
		mu.Unlock()
		defer s.cron.Remove(entry)
		job()
	})
	if err != nil {
		mu.Unlock()
		return 0, err
	}
	id = entryID
	mu.Unlock()
	return entryID, nil
}
