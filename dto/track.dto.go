package dto

import (
	"upskill/models"
	"upskill/services"
)

type TrackRequest struct {
	Name          string  `json:"name" validate:"required,min=3,max=150"`
	Description   *string `json:"description" validate:"omitnil,max=500"`
	Level         string  `json:"level" validate:"required,oneof=INICIANTE INTERMEDIARIO AVANCADO"`
	WorkloadHours int     `json:"workload_hours" validate:"required,gt=0"`
	FocusArea     *string `json:"focus_area" validate:"omitnil,max=100"`
}

func (r *TrackRequest) Input() services.TrackInput {
	return services.TrackInput{
		Name:          r.Name,
		Description:   r.Description,
		Level:         r.Level,
		WorkloadHours: r.WorkloadHours,
		FocusArea:     r.FocusArea,
	}
}

type TrackResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Level         string  `json:"level"`
	WorkloadHours int     `json:"workload_hours"`
	FocusArea     *string `json:"focus_area"`
}

func NewTrackResponse(t *models.Track) TrackResponse {
	return TrackResponse{
		ID:            t.ID,
		Name:          t.Name,
		Description:   nullString(t.Description),
		Level:         t.Level,
		WorkloadHours: t.WorkloadHours,
		FocusArea:     nullString(t.FocusArea),
	}
}

func NewTrackResponses(tracks []models.Track) []TrackResponse {
	out := make([]TrackResponse, 0, len(tracks))
	for i := range tracks {
		out = append(out, NewTrackResponse(&tracks[i]))
	}
	return out
}
