package timelinepane

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/valerian/internal/core/timeline"
	"github.com/riordanpawley/valerian/internal/domain"
	"github.com/riordanpawley/valerian/internal/ui/styles"
)

var origin = time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

func testTimeline() timeline.Timeline {
	return timeline.Generate(timeline.Input{
		Tasks: []domain.Task{
			{ID: "t1", Name: "Write report", Estimated: 2},
		},
		Settings: domain.Settings{
			WorkDuration:       1500,
			ShortBreakDuration: 300,
			LongBreakDuration:  900,
			LongBreakInterval:  4,
		},
		Breaks: []domain.ScheduleBreak{
			{ID: "b1", Label: "Lunch", StartTime: "12:00", Duration: 30},
		},
		Origin: origin,
	})
}

func TestRender_StripAndUpcoming(t *testing.T) {
	s := styles.New()
	tl := testTimeline()

	out := ansi.Strip(Render(tl, origin, s, 80))

	if !strings.Contains(out, "Timeline") {
		t.Fatalf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("strip should paint work blocks, got:\n%s", out)
	}
	if !strings.Contains(out, "░") {
		t.Errorf("strip should paint the pinned break, got:\n%s", out)
	}
	if !strings.Contains(out, "┃") {
		t.Errorf("strip should mark now, got:\n%s", out)
	}
	if !strings.Contains(out, "08:00") {
		t.Errorf("hour marks should start at the origin, got:\n%s", out)
	}
	if !strings.Contains(out, "Write report") {
		t.Errorf("upcoming lines should name the next block, got:\n%s", out)
	}
	if !strings.Contains(out, "25m") {
		t.Errorf("upcoming lines should carry block lengths, got:\n%s", out)
	}
}

func TestRender_EmptyTimeline(t *testing.T) {
	s := styles.New()
	tl := timeline.Generate(timeline.Input{
		Settings: domain.DefaultSettings(),
		Origin:   origin,
	})

	out := ansi.Strip(Render(tl, origin, s, 80))

	if !strings.Contains(out, "nothing projected") {
		t.Errorf("empty timeline should say so, got:\n%s", out)
	}
}

func TestRender_UpcomingSkipsFinishedBlocks(t *testing.T) {
	s := styles.New()
	tl := testTimeline()

	// 9:10 is past the first work block (8:00-8:25) and its break.
	now := origin.Add(70 * time.Minute)
	lines := renderUpcoming(tl, now, s, 80)

	joined := ansi.Strip(strings.Join(lines, "\n"))
	if strings.Contains(joined, "08:00") {
		t.Errorf("finished blocks should not appear, got:\n%s", joined)
	}
	if !strings.Contains(joined, "Lunch") {
		t.Errorf("the pinned break should still be upcoming, got:\n%s", joined)
	}
}

func TestRender_EndsLabelMatchesLastBlock(t *testing.T) {
	s := styles.New()
	tl := testTimeline()

	out := ansi.Strip(Render(tl, origin, s, 80))

	want := tl.End().Format("15:04")
	if !strings.Contains(out, "ends "+want) {
		t.Errorf("header should carry the projected end %s, got:\n%s", want, out)
	}
}
