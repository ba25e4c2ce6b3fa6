package reminder

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/valerian/internal/domain"
)

func testService() *Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewService(time.UTC, logger)
}

func TestDailySpec(t *testing.T) {
	tests := []struct {
		clock   string
		want    string
		wantErr bool
	}{
		{clock: "12:00", want: "0 0 12 * * *"},
		{clock: "09:35", want: "0 35 9 * * *"},
		{clock: "00:00", want: "0 0 0 * * *"},
		{clock: "23:59", want: "0 59 23 * * *"},
		{clock: "24:00", wantErr: true},
		{clock: "noon", wantErr: true},
	}
	for _, tt := range tests {
		got, err := dailySpec(tt.clock)
		if tt.wantErr {
			if err == nil {
				t.Errorf("dailySpec(%q) expected error, got %q", tt.clock, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("dailySpec(%q) unexpected error: %v", tt.clock, err)
			continue
		}
		if got != tt.want {
			t.Errorf("dailySpec(%q) = %q, want %q", tt.clock, got, tt.want)
		}
	}
}

func TestSchedule_RegistersOnePerBreak(t *testing.T) {
	svc := testService()
	defer svc.Stop()

	breaks := []domain.ScheduleBreak{
		{ID: "a", Label: "Lunch", StartTime: "12:00", Duration: 30},
		{ID: "b", Label: "Standup", StartTime: "09:10", Duration: 15},
	}
	svc.Schedule(breaks, func(domain.ScheduleBreak) {})

	assert.Equal(t, 2, svc.Count())
}

func TestSchedule_SkipsUnparseableStart(t *testing.T) {
	svc := testService()
	defer svc.Stop()

	breaks := []domain.ScheduleBreak{
		{ID: "a", Label: "Lunch", StartTime: "12:00", Duration: 30},
		{ID: "b", Label: "Bad", StartTime: "soonish", Duration: 15},
	}
	svc.Schedule(breaks, func(domain.ScheduleBreak) {})

	assert.Equal(t, 1, svc.Count())
}

func TestSchedule_ReplacesPreviousJobs(t *testing.T) {
	svc := testService()
	defer svc.Stop()

	svc.Schedule([]domain.ScheduleBreak{
		{ID: "a", Label: "Lunch", StartTime: "12:00", Duration: 30},
		{ID: "b", Label: "Standup", StartTime: "09:10", Duration: 15},
	}, func(domain.ScheduleBreak) {})
	svc.Schedule([]domain.ScheduleBreak{
		{ID: "c", Label: "Walk", StartTime: "15:00", Duration: 20},
	}, func(domain.ScheduleBreak) {})

	assert.Equal(t, 1, svc.Count())
}

func TestNextFire_AlignsWithBreakStart(t *testing.T) {
	svc := testService()
	defer svc.Stop()

	svc.Schedule([]domain.ScheduleBreak{
		{ID: "a", Label: "Lunch", StartTime: "12:30", Duration: 30},
	}, func(domain.ScheduleBreak) {})
	svc.Start()

	next, ok := svc.NextFire()
	require.True(t, ok)
	assert.Equal(t, 12, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.Equal(t, 0, next.Second())
}

func TestNextFire_EmptySchedule(t *testing.T) {
	svc := testService()
	defer svc.Stop()

	svc.Schedule(nil, func(domain.ScheduleBreak) {})
	svc.Start()

	_, ok := svc.NextFire()
	assert.False(t, ok)
}
