package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"upskill/models"
	"upskill/repositories"
)

const (
	minProgress = 0
	maxProgress = 100
	minRating   = 1
	maxRating   = 5
)

// EnrollmentService owns the enrollment status machine:
// ATIVA -> CONCLUIDA and ATIVA -> CANCELADA, with CONCLUIDA and CANCELADA terminal.
//
// Every operation reads, checks and writes once. Concurrent requests on the same
// enrollment or the same (user, track) pair are not serialized.
type EnrollmentService struct {
	enrollments repositories.EnrollmentRepository
	users       repositories.UserRepository
	tracks      repositories.TrackRepository
	now         func() time.Time
}

// NewEnrollmentService wires the service; a nil clock means time.Now.
func NewEnrollmentService(
	enrollments repositories.EnrollmentRepository,
	users repositories.UserRepository,
	tracks repositories.TrackRepository,
	now func() time.Time,
) *EnrollmentService {
	if now == nil {
		now = time.Now
	}
	return &EnrollmentService{enrollments: enrollments, users: users, tracks: tracks, now: now}
}

func (s *EnrollmentService) GetAll(ctx context.Context) ([]models.EnrollmentDetail, error) {
	return s.enrollments.FindDetails(ctx, repositories.EnrollmentFilter{})
}

func (s *EnrollmentService) GetByID(ctx context.Context, id uint) (*models.EnrollmentDetail, error) {
	detail, err := s.enrollments.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, enrollmentNotFound("enrollment.GetByID", id)
	}
	return detail, nil
}

func (s *EnrollmentService) GetByUser(ctx context.Context, userID uint) ([]models.EnrollmentDetail, error) {
	if err := s.requireUser(ctx, "enrollment.GetByUser", userID); err != nil {
		return nil, err
	}
	return s.enrollments.FindDetails(ctx, repositories.EnrollmentFilter{UserID: &userID})
}

func (s *EnrollmentService) GetByTrack(ctx context.Context, trackID uint) ([]models.EnrollmentDetail, error) {
	if err := s.requireTrack(ctx, "enrollment.GetByTrack", trackID); err != nil {
		return nil, err
	}
	return s.enrollments.FindDetails(ctx, repositories.EnrollmentFilter{TrackID: &trackID})
}

// Enroll opens an ATIVA enrollment at progress 0. Cancelled enrollments of the
// same pair do not block a new one.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, trackID uint) (*models.EnrollmentDetail, error) {
	const op = "enrollment.Enroll"

	if err := s.requireUser(ctx, op, userID); err != nil {
		return nil, err
	}
	if err := s.requireTrack(ctx, op, trackID); err != nil {
		return nil, err
	}

	open, err := s.enrollments.HasOpenEnrollment(ctx, userID, trackID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, conflict(op, "User is already enrolled in this track")
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		TrackID:    trackID,
		EnrolledAt: s.now().UTC(),
		Status:     models.EnrollmentActive,
		Progress:   sql.NullInt32{Int32: 0, Valid: true},
	}
	if err := s.enrollments.Create(ctx, &enrollment); err != nil {
		return nil, err
	}

	log.Printf("[ENROLLMENT] user %d enrolled in track %d (enrollment %d)", userID, trackID, enrollment.ID)
	return s.GetByID(ctx, enrollment.ID)
}

// UpdateProgress sets progress and/or rating on an ATIVA enrollment. Progress of
// 100 or more completes the enrollment in the same call.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, id uint, progress, rating *int) (*models.EnrollmentDetail, error) {
	const op = "enrollment.UpdateProgress"

	enrollment, err := s.loadActive(ctx, op, id,
		"Cannot update a completed enrollment",
		"Cannot update a cancelled enrollment")
	if err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if progress != nil && (*progress < minProgress || *progress > maxProgress) {
		fields["progress"] = "Progress must be between 0 and 100"
	}
	if rating != nil && !validRating(*rating) {
		fields["rating"] = "Rating must be between 1 and 5"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Op: op, Fields: fields}
	}

	if progress != nil {
		enrollment.Progress = sql.NullInt32{Int32: int32(*progress), Valid: true}
		if *progress >= maxProgress {
			s.markCompleted(enrollment)
		}
	}
	if rating != nil {
		enrollment.Rating = sql.NullInt32{Int32: int32(*rating), Valid: true}
	}

	if err := s.enrollments.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	if enrollment.Status == models.EnrollmentCompleted {
		log.Printf("[ENROLLMENT] enrollment %d auto-completed at 100%% progress", id)
	}
	return s.GetByID(ctx, id)
}

// Complete moves an ATIVA enrollment to CONCLUIDA with progress 100. A rating
// may be given in the same call.
func (s *EnrollmentService) Complete(ctx context.Context, id uint, rating *int) (*models.EnrollmentDetail, error) {
	const op = "enrollment.Complete"

	enrollment, err := s.loadActive(ctx, op, id,
		"Enrollment is already completed",
		"Cannot complete a cancelled enrollment")
	if err != nil {
		return nil, err
	}

	if rating != nil && !validRating(*rating) {
		return nil, invalidField(op, "rating", "Rating must be between 1 and 5")
	}

	s.markCompleted(enrollment)
	if rating != nil {
		enrollment.Rating = sql.NullInt32{Int32: int32(*rating), Valid: true}
	}

	if err := s.enrollments.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	log.Printf("[ENROLLMENT] enrollment %d completed", id)
	return s.GetByID(ctx, id)
}

// Cancel moves an ATIVA enrollment to CANCELADA. Progress and rating are kept.
func (s *EnrollmentService) Cancel(ctx context.Context, id uint) (*models.EnrollmentDetail, error) {
	const op = "enrollment.Cancel"

	enrollment, err := s.loadActive(ctx, op, id,
		"Cannot cancel a completed enrollment",
		"Enrollment is already cancelled")
	if err != nil {
		return nil, err
	}

	enrollment.Status = models.EnrollmentCancelled
	enrollment.CancelledAt = sql.NullTime{Time: s.now().UTC(), Valid: true}

	if err := s.enrollments.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	log.Printf("[ENROLLMENT] enrollment %d cancelled", id)
	return s.GetByID(ctx, id)
}

// Delete removes the enrollment whatever its status.
func (s *EnrollmentService) Delete(ctx context.Context, id uint) error {
	exists, err := s.enrollments.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return enrollmentNotFound("enrollment.Delete", id)
	}
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[ENROLLMENT] enrollment %d deleted", id)
	return nil
}

// loadActive fetches the enrollment and rejects terminal ones with the given messages.
func (s *EnrollmentService) loadActive(ctx context.Context, op string, id uint, completedMsg, cancelledMsg string) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, enrollmentNotFound(op, id)
	}

	if !enrollment.IsTerminal() {
		return enrollment, nil
	}
	if enrollment.Status == models.EnrollmentCompleted {
		return nil, conflict(op, "%s", completedMsg)
	}
	return nil, conflict(op, "%s", cancelledMsg)
}

func (s *EnrollmentService) markCompleted(enrollment *models.Enrollment) {
	enrollment.Status = models.EnrollmentCompleted
	enrollment.CompletedAt = sql.NullTime{Time: s.now().UTC(), Valid: true}
	enrollment.Progress = sql.NullInt32{Int32: maxProgress, Valid: true}
}

func (s *EnrollmentService) requireUser(ctx context.Context, op string, id uint) error {
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(op, "User with ID %d not found", id)
	}
	return nil
}

func (s *EnrollmentService) requireTrack(ctx context.Context, op string, id uint) error {
	exists, err := s.tracks.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(op, "Track with ID %d not found", id)
	}
	return nil
}

func enrollmentNotFound(op string, id uint) error {
	return notFound(op, "Enrollment with ID %d not found", id)
}

func validRating(rating int) bool {
	return rating >= minRating && rating <= maxRating
}
