package services

import (
	"context"
	"testing"

	"upskill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.users.Create(ctx, UserInput{
		Name:        "  Maria Souza ",
		Email:       " Maria@Example.com ",
		AreaOfWork:  strPtr("Data"),
		CareerLevel: strPtr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", created.Name)
	assert.Equal(t, "maria@example.com", created.Email)
	assert.Equal(t, "Data", created.AreaOfWork.String)
	assert.False(t, created.CareerLevel.Valid)
	assert.True(t, created.RegisteredAt.Equal(fixedNow))

	updated, err := f.users.Update(ctx, created.ID, UserInput{
		Name:        "Maria S.",
		Email:       "maria@example.com",
		CareerLevel: strPtr("Senior"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria S.", updated.Name)
	assert.False(t, updated.AreaOfWork.Valid)
	assert.Equal(t, "Senior", updated.CareerLevel.String)

	all, err := f.users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, f.users.Delete(ctx, created.ID))
	_, err = f.users.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, f.users.Delete(ctx, created.ID), ErrNotFound)
}

func TestUserEmailIsUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.user(t, "same@example.com")
	second := f.user(t, "other@example.com")

	_, err := f.users.Create(ctx, UserInput{Name: "Dup", Email: "SAME@example.com"})
	require.ErrorIs(t, err, ErrConflict)

	_, err = f.users.Update(ctx, second.ID, UserInput{Name: "Dup", Email: first.Email})
	require.ErrorIs(t, err, ErrConflict)

	_, err = f.users.Update(ctx, 999, UserInput{Name: "Nobody", Email: "nobody@example.com"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTrackLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.tracks.Create(ctx, TrackInput{Name: " ", Level: "EXPERT", WorkloadHours: 0})
	require.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)

	tr, err := f.tracks.Create(ctx, TrackInput{
		Name:          "Cloud Native",
		Description:   strPtr("Containers and Kubernetes"),
		Level:         "avancado",
		WorkloadHours: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LevelAdvanced, tr.Level)
	assert.Equal(t, "Containers and Kubernetes", tr.Description.String)
	assert.False(t, tr.FocusArea.Valid)

	tr, err = f.tracks.Update(ctx, tr.ID, TrackInput{
		Name:          "Cloud Native 2",
		Level:         models.LevelBeginner,
		WorkloadHours: 20,
		FocusArea:     strPtr("Infra"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cloud Native 2", tr.Name)
	assert.Equal(t, "Infra", tr.FocusArea.String)

	u := f.user(t, "learner@example.com")
	e, err := f.enrollments.Enroll(ctx, u.ID, tr.ID)
	require.NoError(t, err)

	require.NoError(t, f.tracks.Delete(ctx, tr.ID))
	_, err = f.enrollments.GetByID(ctx, e.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = f.tracks.GetByID(ctx, tr.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
