package services

import (
	"time"

	"github.com/jkleiven/repwise/internal/models"
)

type StatsSetReader interface {
	FetchSetRows(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SetSample, error)
	CountWorkouts(userID uint) (int64, error)
	ListWorkoutDays(userID uint) ([]time.Time, error)
}

type StatsService struct {
	sets StatsSetReader
}

func NewStatsService(sets StatsSetReader) *StatsService {
	return &StatsService{sets: sets}
}

// BuildVolumeStatsForRange returns one row per training day inside the
// inclusive [from, to] range, ascending by date. The weekly and monthly
// totals are computed over the user's full history first, so a range that
// clips a week still reports that week's complete volume.
func (service *StatsService) BuildVolumeStatsForRange(userID uint, from *time.Time, to *time.Time) ([]models.VolumeStat, error) {
	samples, err := service.sets.FetchSetRows(userID, nil, nil)
	if err != nil {
		return nil, err
	}

	stats := BuildVolumeStats(samples)
	return FilterVolumeStats(stats, from, to), nil
}

// AggregateVolumeForRange feeds the range-filtered volume rows to the
// bucket aggregator.
func (service *StatsService) AggregateVolumeForRange(userID uint, from time.Time, to time.Time, groupBy string) ([]models.AggregatedPeriod, error) {
	if groupBy != GroupByWeek && groupBy != GroupByMonth {
		return nil, ErrInvalidGroupBy
	}

	stats, err := service.BuildVolumeStatsForRange(userID, &from, &to)
	if err != nil {
		return nil, err
	}

	return AggregateVolume(stats, groupBy)
}

func (service *StatsService) BuildUserStats(userID uint, today time.Time) (models.UserStats, error) {
	workoutCount, err := service.sets.CountWorkouts(userID)
	if err != nil {
		return models.UserStats{}, err
	}

	samples, err := service.sets.FetchSetRows(userID, nil, nil)
	if err != nil {
		return models.UserStats{}, err
	}

	days, err := service.sets.ListWorkoutDays(userID)
	if err != nil {
		return models.UserStats{}, err
	}

	current, best := WorkoutStreaks(days, today)
	return models.UserStats{
		TotalWorkouts: int(workoutCount),
		TotalVolume:   TotalVolume(samples),
		CurrentStreak: current,
		BestStreak:    best,
	}, nil
}
