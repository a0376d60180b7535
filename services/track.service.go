package services

import (
	"context"
	"log"
	"slices"
	"strings"

	"upskill/models"
	"upskill/repositories"
)

// TrackLevels lists the accepted difficulty levels
var TrackLevels = []string{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}

// TrackInput carries the writable fields of a track
type TrackInput struct {
	Name          string
	Description   *string
	Level         string
	WorkloadHours int
	FocusArea     *string
}

type TrackService struct {
	tracks repositories.TrackRepository
}

func NewTrackService(tracks repositories.TrackRepository) *TrackService {
	return &TrackService{tracks: tracks}
}

func (s *TrackService) GetAll(ctx context.Context) ([]models.Track, error) {
	return s.tracks.FindAll(ctx)
}

func (s *TrackService) GetByID(ctx context.Context, id uint) (*models.Track, error) {
	track, err := s.tracks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, notFound("track.GetByID", "Track with ID %d not found", id)
	}
	return track, nil
}

func (s *TrackService) Create(ctx context.Context, in TrackInput) (*models.Track, error) {
	const op = "track.Create"

	in.Name = strings.TrimSpace(in.Name)
	in.Level = strings.ToUpper(strings.TrimSpace(in.Level))
	if err := validateTrackInput(op, in); err != nil {
		return nil, err
	}

	var track models.Track
	applyTrackInput(&track, in)
	if err := s.tracks.Create(ctx, &track); err != nil {
		return nil, err
	}
	log.Printf("[TRACK] track %d created (%s)", track.ID, track.Level)
	return &track, nil
}

func (s *TrackService) Update(ctx context.Context, id uint, in TrackInput) (*models.Track, error) {
	const op = "track.Update"

	track, err := s.tracks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, notFound(op, "Track with ID %d not found", id)
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Level = strings.ToUpper(strings.TrimSpace(in.Level))
	if err := validateTrackInput(op, in); err != nil {
		return nil, err
	}

	applyTrackInput(track, in)
	if err := s.tracks.Update(ctx, track); err != nil {
		return nil, err
	}
	return track, nil
}

// Delete removes the track and, through the foreign key, its enrollments.
func (s *TrackService) Delete(ctx context.Context, id uint) error {
	exists, err := s.tracks.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound("track.Delete", "Track with ID %d not found", id)
	}
	if err := s.tracks.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[TRACK] track %d deleted", id)
	return nil
}

func validateTrackInput(op string, in TrackInput) error {
	fields := map[string]string{}
	if in.Name == "" {
		fields["name"] = "Name is required"
	}
	if !IsTrackLevel(in.Level) {
		fields["level"] = "Level must be one of " + strings.Join(TrackLevels, ", ")
	}
	if in.WorkloadHours <= 0 {
		fields["workload_hours"] = "Workload hours must be greater than 0"
	}
	if len(fields) > 0 {
		return &ValidationError{Op: op, Fields: fields}
	}
	return nil
}

func IsTrackLevel(level string) bool {
	return slices.Contains(TrackLevels, level)
}

func applyTrackInput(track *models.Track, in TrackInput) {
	track.Name = in.Name
	track.Description = optionalString(in.Description)
	track.Level = in.Level
	track.WorkloadHours = in.WorkloadHours
	track.FocusArea = optionalString(in.FocusArea)
}
