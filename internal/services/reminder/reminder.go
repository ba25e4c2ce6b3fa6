// Package reminder fires daily alerts when pinned schedule breaks begin.
package reminder

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/riordanpawley/valerian/internal/domain"
)

// NotifyFunc receives the break whose start time just arrived.
type NotifyFunc func(domain.ScheduleBreak)

// Service registers one cron job per pinned break.
type Service struct {
	cron    *cron.Cron
	entries []cron.EntryID
	logger  *slog.Logger
}

// NewService creates a scheduler firing in the given location.
func NewService(loc *time.Location, logger *slog.Logger) *Service {
	return &Service{
		cron:   cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		logger: logger,
	}
}

// Schedule replaces all registered reminders with one per break. Breaks
// whose start time does not parse are skipped.
func (s *Service) Schedule(breaks []domain.ScheduleBreak, notify NotifyFunc) {
	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = s.entries[:0]

	for _, brk := range breaks {
		spec, err := dailySpec(brk.StartTime)
		if err != nil {
			s.logger.Warn("skipping reminder", "break", brk.Label, "error", err)
			continue
		}
		id, err := s.cron.AddFunc(spec, func() { notify(brk) })
		if err != nil {
			s.logger.Warn("skipping reminder", "break", brk.Label, "error", err)
			continue
		}
		s.entries = append(s.entries, id)
	}

	s.logger.Debug("reminders scheduled", "count", len(s.entries))
}

// Start begins firing reminders.
func (s *Service) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for any running job.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Count returns the number of active reminders.
func (s *Service) Count() int {
	return len(s.entries)
}

// NextFire returns the soonest upcoming reminder time, if any.
func (s *Service) NextFire() (time.Time, bool) {
	var next time.Time
	for _, id := range s.entries {
		entry := s.cron.Entry(id)
		if entry.Next.IsZero() {
			continue
		}
		if next.IsZero() || entry.Next.Before(next) {
			next = entry.Next
		}
	}
	return next, !next.IsZero()
}

// dailySpec converts "HH:MM" to a six-field cron spec.
func dailySpec(clock string) (string, error) {
	hour, minute, err := domain.ParseClock(clock)
	if err != nil {
		return "", err
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
