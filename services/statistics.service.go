package services

import (
	"context"
	"math"

	"upskill/models"
	"upskill/repositories"
)

const defaultTopTracks = 5

// Statistics is a point-in-time roll-up of the platform
type Statistics struct {
	TotalUsers           int64
	TotalTracks          int64
	TotalEnrollments     int64
	ActiveEnrollments    int64
	CompletedEnrollments int64
	CancelledEnrollments int64
	CompletionRate       float64 // percent, 2 decimals
	AverageRating        float64 // 2 decimals
	TopTracks            []models.TrackPopularity
}

// StatisticsService recomputes the roll-up from persisted state on every call.
type StatisticsService struct {
	users       repositories.UserRepository
	tracks      repositories.TrackRepository
	enrollments repositories.EnrollmentRepository
	topLimit    int
}

func NewStatisticsService(
	users repositories.UserRepository,
	tracks repositories.TrackRepository,
	enrollments repositories.EnrollmentRepository,
	topLimit int,
) *StatisticsService {
	if topLimit < 1 {
		topLimit = defaultTopTracks
	}
	return &StatisticsService{users: users, tracks: tracks, enrollments: enrollments, topLimit: topLimit}
}

func (s *StatisticsService) Compute(ctx context.Context) (*Statistics, error) {
	var (
		stats Statistics
		err   error
	)

	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalTracks, err = s.tracks.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEnrollments, err = s.enrollments.CountAll(ctx); err != nil {
		return nil, err
	}

	byStatus, err := s.enrollments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.ActiveEnrollments = byStatus[models.EnrollmentActive]
	stats.CompletedEnrollments = byStatus[models.EnrollmentCompleted]
	stats.CancelledEnrollments = byStatus[models.EnrollmentCancelled]

	stats.CompletionRate = CompletionRate(stats.CompletedEnrollments, stats.TotalEnrollments)

	avg, err := s.enrollments.AverageRating(ctx)
	if err != nil {
		return nil, err
	}
	stats.AverageRating = round2(avg)

	if stats.TopTracks, err = s.enrollments.TopTracks(ctx, s.topLimit); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CompletionRate is completed/total as a percentage rounded to 2 decimals, 0 when total is 0.
func CompletionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(completed) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
