package dto

import (
	"time"

	"upskill/models"
)

type EnrollRequest struct {
	UserID  uint `json:"user_id" validate:"required,gt=0"`
	TrackID uint `json:"track_id" validate:"required,gt=0"`
}

type UpdateEnrollmentRequest struct {
	Progress *int `json:"progress" validate:"omitnil,min=0,max=100"`
	Rating   *int `json:"rating" validate:"omitnil,min=1,max=5"`
}

type CompleteEnrollmentRequest struct {
	Rating *int `json:"rating" validate:"omitnil,min=1,max=5"`
}

type EnrollmentResponse struct {
	ID                 uint       `json:"id"`
	UserID             uint       `json:"user_id"`
	UserName           string     `json:"user_name"`
	UserEmail          string     `json:"user_email"`
	TrackID            uint       `json:"track_id"`
	TrackName          string     `json:"track_name"`
	TrackLevel         string     `json:"track_level"`
	TrackWorkloadHours int        `json:"track_workload_hours"`
	EnrolledAt         time.Time  `json:"enrolled_at"`
	Status             string     `json:"status"`
	Progress           *int       `json:"progress"`
	CompletedAt        *time.Time `json:"completed_at"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	Rating             *int       `json:"rating"`
}

func NewEnrollmentResponse(e *models.EnrollmentDetail) EnrollmentResponse {
	return EnrollmentResponse{
		ID:                 e.ID,
		UserID:             e.UserID,
		UserName:           e.UserName,
		UserEmail:          e.UserEmail,
		TrackID:            e.TrackID,
		TrackName:          e.TrackName,
		TrackLevel:         e.TrackLevel,
		TrackWorkloadHours: e.TrackWorkloadHours,
		EnrolledAt:         e.EnrolledAt,
		Status:             e.Status,
		Progress:           nullInt(e.Progress),
		CompletedAt:        nullTime(e.CompletedAt),
		CancelledAt:        nullTime(e.CancelledAt),
		Rating:             nullInt(e.Rating),
	}
}

func NewEnrollmentResponses(rows []models.EnrollmentDetail) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewEnrollmentResponse(&rows[i]))
	}
	return out
}
