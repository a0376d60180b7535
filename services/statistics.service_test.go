package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      float64
	}{
		{"no enrollments", 0, 0, 0},
		{"none completed", 0, 4, 0},
		{"all completed", 3, 3, 100},
		{"one third", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionRate(tt.completed, tt.total))
		})
	}
}

func TestStatisticsEmpty(t *testing.T) {
	f := newFixture(t)

	stats, err := f.stats.Compute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalEnrollments)
	assert.Zero(t, stats.CompletionRate)
	assert.Zero(t, stats.AverageRating)
	assert.Empty(t, stats.TopTracks)
}

func TestStatisticsTopTracks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t1 := f.track(t, "T1")
	t2 := f.track(t, "T2")
	users := []uint{
		f.user(t, "a@example.com").ID,
		f.user(t, "b@example.com").ID,
		f.user(t, "c@example.com").ID,
	}

	var t1Enrollments []uint
	for _, u := range users {
		e, err := f.enrollments.Enroll(ctx, u, t1.ID)
		require.NoError(t, err)
		t1Enrollments = append(t1Enrollments, e.ID)
	}
	for _, u := range users[:2] {
		_, err := f.enrollments.Enroll(ctx, u, t2.ID)
		require.NoError(t, err)
	}

	_, err := f.enrollments.Complete(ctx, t1Enrollments[0], intPtr(5))
	require.NoError(t, err)
	_, err = f.enrollments.UpdateProgress(ctx, t1Enrollments[1], intPtr(100), intPtr(4))
	require.NoError(t, err)
	// ratings count regardless of status
	_, err = f.enrollments.UpdateProgress(ctx, t1Enrollments[2], nil, intPtr(2))
	require.NoError(t, err)
	_, err = f.enrollments.Cancel(ctx, t1Enrollments[2])
	require.NoError(t, err)

	stats, err := f.stats.Compute(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.TotalTracks)
	assert.EqualValues(t, 5, stats.TotalEnrollments)
	assert.EqualValues(t, 2, stats.ActiveEnrollments)
	assert.EqualValues(t, 2, stats.CompletedEnrollments)
	assert.EqualValues(t, 1, stats.CancelledEnrollments)
	assert.Equal(t, 40.0, stats.CompletionRate)
	assert.Equal(t, 3.67, stats.AverageRating)

	require.Len(t, stats.TopTracks, 2)
	assert.Equal(t, t1.ID, stats.TopTracks[0].TrackID)
	assert.Equal(t, "T1", stats.TopTracks[0].TrackName)
	assert.EqualValues(t, 3, stats.TopTracks[0].Total)
	assert.EqualValues(t, 2, stats.TopTracks[0].Completions)
	assert.Equal(t, t2.ID, stats.TopTracks[1].TrackID)
	assert.EqualValues(t, 2, stats.TopTracks[1].Total)
	assert.EqualValues(t, 0, stats.TopTracks[1].Completions)
}

func TestStatisticsTopTracksLimitAndTieBreak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "solo@example.com")

	var trackIDs []uint
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		tr := f.track(t, name)
		trackIDs = append(trackIDs, tr.ID)
		_, err := f.enrollments.Enroll(ctx, u.ID, tr.ID)
		require.NoError(t, err)
	}

	stats, err := f.stats.Compute(ctx)
	require.NoError(t, err)

	require.Len(t, stats.TopTracks, 5)
	for i, top := range stats.TopTracks {
		assert.Equal(t, trackIDs[i], top.TrackID)
	}
}
