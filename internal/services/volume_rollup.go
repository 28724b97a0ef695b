package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/jkleiven/repwise/internal/models"
)

// BuildVolumeStats folds raw set samples into one VolumeStat per training
// day, ascending by date. The weekly and monthly columns are the totals of
// the ISO week and calendar month a day belongs to, computed over every
// sample passed in, so each day of the same week reports the same weekly
// figure.
func BuildVolumeStats(samples []models.SetSample) []models.VolumeStat {
	daily := make(map[string]float64)
	weekly := make(map[string]float64)
	monthly := make(map[string]float64)

	for _, sample := range samples {
		volume := float64(sample.Reps) * sample.Weight
		dayKey := sample.Date.Format(volumeDateLayout)
		daily[dayKey] += volume
		weekly[isoWeekKey(sample.Date)] += volume
		monthly[sample.Date.Format("2006-01")] += volume
	}

	days := make([]string, 0, len(daily))
	for dayKey := range daily {
		days = append(days, dayKey)
	}
	sort.Strings(days)

	stats := make([]models.VolumeStat, 0, len(days))
	for _, dayKey := range days {
		day, err := time.Parse(volumeDateLayout, dayKey)
		if err != nil {
			continue
		}
		stats = append(stats, models.VolumeStat{
			Date:          dayKey,
			DailyVolume:   daily[dayKey],
			WeeklyVolume:  weekly[isoWeekKey(day)],
			MonthlyVolume: monthly[day.Format("2006-01")],
		})
	}
	return stats
}

// FilterVolumeStats keeps the rows inside the inclusive [from, to] day
// range. A nil bound is open.
func FilterVolumeStats(stats []models.VolumeStat, from *time.Time, to *time.Time) []models.VolumeStat {
	filtered := make([]models.VolumeStat, 0, len(stats))
	for _, stat := range stats {
		if from != nil && stat.Date < from.Format(volumeDateLayout) {
			continue
		}
		if to != nil && stat.Date > to.Format(volumeDateLayout) {
			continue
		}
		filtered = append(filtered, stat)
	}
	return filtered
}

func isoWeekKey(day time.Time) string {
	isoYear, isoWeek := day.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)
}
