package dto

import "upskill/services"

type TopTrackResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	TotalEnrollments int64  `json:"total_enrollments"`
	Completions      int64  `json:"completions"`
}

type StatisticsResponse struct {
	TotalUsers           int64              `json:"total_users"`
	TotalTracks          int64              `json:"total_tracks"`
	TotalEnrollments     int64              `json:"total_enrollments"`
	ActiveEnrollments    int64              `json:"active_enrollments"`
	CompletedEnrollments int64              `json:"completed_enrollments"`
	CancelledEnrollments int64              `json:"cancelled_enrollments"`
	CompletionRate       float64            `json:"completion_rate"`
	AverageRating        float64            `json:"average_rating"`
	TopTracks            []TopTrackResponse `json:"top_tracks"`
}

func NewStatisticsResponse(s *services.Statistics) StatisticsResponse {
	top := make([]TopTrackResponse, 0, len(s.TopTracks))
	for _, t := range s.TopTracks {
		top = append(top, TopTrackResponse{
			ID:               t.TrackID,
			Name:             t.TrackName,
			TotalEnrollments: t.Total,
			Completions:      t.Completions,
		})
	}

	return StatisticsResponse{
		TotalUsers:           s.TotalUsers,
		TotalTracks:          s.TotalTracks,
		TotalEnrollments:     s.TotalEnrollments,
		ActiveEnrollments:    s.ActiveEnrollments,
		CompletedEnrollments: s.CompletedEnrollments,
		CancelledEnrollments: s.CancelledEnrollments,
		CompletionRate:       s.CompletionRate,
		AverageRating:        s.AverageRating,
		TopTracks:            top,
	}
}
