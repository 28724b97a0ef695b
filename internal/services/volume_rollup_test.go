package services

import (
	"testing"

	"github.com/jkleiven/repwise/internal/models"
)

func TestBuildVolumeStatsRollsUpDayWeekAndMonth(t *testing.T) {
	samples := []models.SetSample{
		// Monday and Wednesday of ISO week 2025-W06, both in February.
		{Date: mustParseDay(t, "2025-02-03"), Reps: 5, Weight: 100},
		{Date: mustParseDay(t, "2025-02-03"), Reps: 5, Weight: 100},
		{Date: mustParseDay(t, "2025-02-05"), Reps: 10, Weight: 50},
		// The following Monday, still February.
		{Date: mustParseDay(t, "2025-02-10"), Reps: 10, Weight: 20},
	}

	stats := BuildVolumeStats(samples)
	if len(stats) != 3 {
		t.Fatalf("expected 3 days, got %#v", stats)
	}

	first := stats[0]
	if first.Date != "2025-02-03" || first.DailyVolume != 1000 {
		t.Fatalf("unexpected first day %#v", first)
	}
	if first.WeeklyVolume != 1500 {
		t.Fatalf("expected 1500 weekly volume, got %#v", first)
	}
	if stats[1].WeeklyVolume != 1500 {
		t.Fatalf("days of the same week must share the weekly total, got %#v", stats[1])
	}
	if stats[2].WeeklyVolume != 200 {
		t.Fatalf("the next week starts fresh, got %#v", stats[2])
	}
	for _, stat := range stats {
		if stat.MonthlyVolume != 1700 {
			t.Fatalf("all february days must carry the month total, got %#v", stat)
		}
	}
}

func TestBuildVolumeStatsEmptyInput(t *testing.T) {
	if stats := BuildVolumeStats(nil); len(stats) != 0 {
		t.Fatalf("expected no rows, got %#v", stats)
	}
}

func TestFilterVolumeStats(t *testing.T) {
	stats := []models.VolumeStat{
		{Date: "2025-01-01"},
		{Date: "2025-01-15"},
		{Date: "2025-02-01"},
	}

	from := mustParseDay(t, "2025-01-15")
	to := mustParseDay(t, "2025-01-31")

	filtered := FilterVolumeStats(stats, &from, &to)
	if len(filtered) != 1 || filtered[0].Date != "2025-01-15" {
		t.Fatalf("expected only the mid-january row, got %#v", filtered)
	}

	openEnded := FilterVolumeStats(stats, &from, nil)
	if len(openEnded) != 2 {
		t.Fatalf("expected two rows with an open upper bound, got %#v", openEnded)
	}

	unbounded := FilterVolumeStats(stats, nil, nil)
	if len(unbounded) != 3 {
		t.Fatalf("expected all rows without bounds, got %#v", unbounded)
	}
}
