// Package store persists application state as independent JSON buckets in a
// diskv-backed directory. Every bucket loads on its own: a missing or
// corrupt one falls back to its defaults instead of failing startup, so a
// damaged log can never take the settings down with it.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peterbourgon/diskv/v3"

	"github.com/riordanpawley/valerian/internal/domain"
)

// Bucket keys. Each holds one JSON document.
const (
	bucketSettings = "settings"
	bucketTasks    = "tasks"
	bucketLog      = "log"
	bucketCount    = "pomodoro"
	bucketSchedule = "schedule"
	bucketGroup    = "group"
)

// Persistence is the narrow contract the app reads and writes through.
// Loads absorb failures into defaults; saves report theirs.
type Persistence interface {
	LoadSettings() domain.Settings
	SaveSettings(domain.Settings) error

	LoadTasks() []domain.Task
	SaveTasks([]domain.Task) error

	LoadLog() []domain.LogEntry
	SaveLog([]domain.LogEntry) error
	ClearLog() error

	LoadCount() int
	SaveCount(int) error

	LoadSchedule() domain.Schedule
	SaveSchedule(domain.Schedule) error

	LoadGroup() domain.GroupSession
	SaveGroup(domain.GroupSession) error
	ClearGroup() error
}

// Load opens the diskv-backed store using the provided config, resolving
// the config chain when cfg is nil.
func Load(cfg Config, logger *slog.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	flatTransform := func(s string) []string { return []string{} }
	return &diskvStore{
		d: diskv.New(diskv.Options{
			BasePath:     cfg.BasePath(),
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		logger: logger,
	}, nil
}

type diskvStore struct {
	d      *diskv.Diskv
	logger *slog.Logger
}

func (s *diskvStore) LoadSettings() domain.Settings {
	var out domain.Settings
	if err := s.read(bucketSettings, &out); err != nil {
		s.fallback(bucketSettings, err)
		return domain.DefaultSettings()
	}
	return out.Normalize()
}

func (s *diskvStore) SaveSettings(v domain.Settings) error {
	return s.write(bucketSettings, v)
}

func (s *diskvStore) LoadTasks() []domain.Task {
	var out []domain.Task
	if err := s.read(bucketTasks, &out); err != nil {
		s.fallback(bucketTasks, err)
		return nil
	}
	return out
}

func (s *diskvStore) SaveTasks(v []domain.Task) error {
	return s.write(bucketTasks, v)
}

func (s *diskvStore) LoadLog() []domain.LogEntry {
	var out []domain.LogEntry
	if err := s.read(bucketLog, &out); err != nil {
		s.fallback(bucketLog, err)
		return nil
	}
	return out
}

func (s *diskvStore) SaveLog(v []domain.LogEntry) error {
	return s.write(bucketLog, v)
}

func (s *diskvStore) ClearLog() error {
	if !s.d.Has(bucketLog) {
		return nil
	}
	if err := s.d.Erase(bucketLog); err != nil {
		return &domain.StoreError{Bucket: bucketLog, Op: "clear", Err: err}
	}
	s.logger.Debug("bucket cleared", "bucket", bucketLog)
	return nil
}

func (s *diskvStore) LoadCount() int {
	var out int
	if err := s.read(bucketCount, &out); err != nil {
		s.fallback(bucketCount, err)
		return 0
	}
	if out < 0 {
		return 0
	}
	return out
}

func (s *diskvStore) SaveCount(v int) error {
	return s.write(bucketCount, v)
}

func (s *diskvStore) LoadSchedule() domain.Schedule {
	var out domain.Schedule
	if err := s.read(bucketSchedule, &out); err != nil {
		s.fallback(bucketSchedule, err)
		return domain.DefaultSchedule()
	}
	return out.Normalize()
}

func (s *diskvStore) SaveSchedule(v domain.Schedule) error {
	return s.write(bucketSchedule, v)
}

func (s *diskvStore) LoadGroup() domain.GroupSession {
	var out domain.GroupSession
	if err := s.read(bucketGroup, &out); err != nil {
		s.fallback(bucketGroup, err)
		return domain.GroupSession{}
	}
	return out
}

func (s *diskvStore) SaveGroup(v domain.GroupSession) error {
	return s.write(bucketGroup, v)
}

func (s *diskvStore) ClearGroup() error {
	if !s.d.Has(bucketGroup) {
		return nil
	}
	if err := s.d.Erase(bucketGroup); err != nil {
		return &domain.StoreError{Bucket: bucketGroup, Op: "clear", Err: err}
	}
	s.logger.Debug("bucket cleared", "bucket", bucketGroup)
	return nil
}

func (s *diskvStore) read(bucket string, v any) error {
	data, err := s.d.Read(bucket)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
	}
	return nil
}

func (s *diskvStore) write(bucket string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &domain.StoreError{Bucket: bucket, Op: "save", Err: err}
	}
	if err := s.d.Write(bucket, data); err != nil {
		return &domain.StoreError{Bucket: bucket, Op: "save", Err: err}
	}
	s.logger.Debug("bucket saved", "bucket", bucket, "bytes", len(data))
	return nil
}

// fallback records why a load fell back to defaults. A missing bucket is
// the normal first run; a corrupt one deserves a warning.
func (s *diskvStore) fallback(bucket string, err error) {
	if errors.Is(err, domain.ErrCorruptData) {
		s.logger.Warn("bucket corrupt, using defaults", "bucket", bucket, "error", err)
		return
	}
	s.logger.Debug("bucket missing, using defaults", "bucket", bucket)
}
