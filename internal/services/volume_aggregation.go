package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jkleiven/repwise/internal/models"
)

const (
	GroupByWeek  = "week"
	GroupByMonth = "month"
)

var ErrInvalidGroupBy = errors.New("group_by must be week or month")

const volumeDateLayout = "2006-01-02"

// AggregateVolume buckets per-day volume records into weeks or months.
//
// The weekly and monthly figures on a VolumeStat are running totals for the
// whole bucket, so every record of a bucket carries the same value. The
// first record seen for a bucket wins and later ones are ignored, never
// summed. Records are expected to be pre-filtered to the caller's range;
// whatever arrives here is bucketed as given.
func AggregateVolume(records []models.VolumeStat, groupBy string) ([]models.AggregatedPeriod, error) {
	if groupBy != GroupByWeek && groupBy != GroupByMonth {
		return nil, ErrInvalidGroupBy
	}

	volumes := make(map[string]float64, len(records))
	starts := make(map[string]string, len(records))
	for _, record := range records {
		day, err := time.Parse(volumeDateLayout, record.Date)
		if err != nil {
			return nil, fmt.Errorf("parse volume record date %q: %w", record.Date, err)
		}

		var key string
		var start time.Time
		var volume float64
		if groupBy == GroupByWeek {
			isoYear, isoWeek := day.ISOWeek()
			key = fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)
			start = isoWeekStart(isoYear, isoWeek)
			volume = record.WeeklyVolume
		} else {
			key = day.Format("2006-01")
			start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
			volume = record.MonthlyVolume
		}

		if _, seen := volumes[key]; seen {
			continue
		}
		volumes[key] = volume
		starts[key] = start.Format(volumeDateLayout)
	}

	aggregated := make([]models.AggregatedPeriod, 0, len(volumes))
	for key, volume := range volumes {
		aggregated = append(aggregated, models.AggregatedPeriod{
			Period:    key,
			Volume:    volume,
			StartDate: starts[key],
		})
	}

	sort.Slice(aggregated, func(i, j int) bool {
		return aggregated[i].StartDate < aggregated[j].StartDate
	})
	return aggregated, nil
}

// isoWeekStart returns the Monday of the given ISO-8601 week. January 4th
// always falls in week 1 of its week-numbering year.
func isoWeekStart(isoYear int, isoWeek int) time.Time {
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)
	return week1Monday.AddDate(0, 0, (isoWeek-1)*7)
}
