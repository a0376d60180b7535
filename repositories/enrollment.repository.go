package repositories

import (
	"context"
	"database/sql"
	"errors"

	"upskill/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnrollmentFilter narrows FindDetails; nil fields are ignored
type EnrollmentFilter struct {
	UserID  *uint
	TrackID *uint
}

type EnrollmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Enrollment, error)
	FindDetail(ctx context.Context, id uint) (*models.EnrollmentDetail, error)
	FindDetails(ctx context.Context, filter EnrollmentFilter) ([]models.EnrollmentDetail, error)
	HasOpenEnrollment(ctx context.Context, userID, trackID uint) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)

	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	AverageRating(ctx context.Context) (float64, error)
	TopTracks(ctx context.Context, limit int) ([]models.TrackPopularity, error)
}

const enrollmentDetailColumns = `e.id AS id, e.user_id AS user_id, u.name AS user_name, u.email AS user_email,
	e.track_id AS track_id, t.name AS track_name, t.level AS track_level, t.workload_hours AS track_workload_hours,
	e.enrolled_at AS enrolled_at, e.status AS status, e.progress AS progress,
	e.completed_at AS completed_at, e.cancelled_at AS cancelled_at, e.rating AS rating`

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) details(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("enrollments AS e").
		Select(enrollmentDetailColumns).
		Joins("JOIN users u ON u.id = e.user_id").
		Joins("JOIN tracks t ON t.id = e.track_id")
}

// FindByID returns nil without an error when the enrollment does not exist
func (r *enrollmentRepository) FindByID(ctx context.Context, id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.WithContext(ctx).First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindDetail(ctx context.Context, id uint) (*models.EnrollmentDetail, error) {
	var rows []models.EnrollmentDetail
	if err := r.details(ctx).Where("e.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *enrollmentRepository) FindDetails(ctx context.Context, filter EnrollmentFilter) ([]models.EnrollmentDetail, error) {
	query := r.details(ctx)
	if filter.UserID != nil {
		query = query.Where("e.user_id = ?", *filter.UserID)
	}
	if filter.TrackID != nil {
		query = query.Where("e.track_id = ?", *filter.TrackID)
	}

	rows := []models.EnrollmentDetail{}
	err := query.Order("e.enrolled_at desc").Order("e.id desc").Scan(&rows).Error
	return rows, err
}

// HasOpenEnrollment reports whether the pair already holds an enrollment that is not cancelled
func (r *enrollmentRepository) HasOpenEnrollment(ctx context.Context, userID, trackID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("user_id = ? AND track_id = ? AND status <> ?", userID, trackID, models.EnrollmentCancelled).
		Count(&count).Error
	return count > 0, err
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(enrollment).Error
}

func (r *enrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(enrollment).Error
}

func (r *enrollmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Enrollment{}, id).Error
}

func (r *enrollmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *enrollmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).Count(&count).Error
	return count, err
}

func (r *enrollmentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// AverageRating is the mean of every non-null rating, whatever the status; 0 when there is none
func (r *enrollmentRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Select("AVG(rating)").
		Where("rating IS NOT NULL").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Float64, nil
}

// TopTracks ranks tracks by enrollment volume; ties go to the lower track id
func (r *enrollmentRepository) TopTracks(ctx context.Context, limit int) ([]models.TrackPopularity, error) {
	rows := []models.TrackPopularity{}
	err := r.db.WithContext(ctx).
		Table("enrollments AS e").
		Select("e.track_id AS track_id, t.name AS track_name, COUNT(*) AS total, "+
			"SUM(CASE WHEN e.status = ? THEN 1 ELSE 0 END) AS completions", models.EnrollmentCompleted).
		Joins("JOIN tracks t ON t.id = e.track_id").
		Group("e.track_id, t.name").
		Order("total desc").
		Order("e.track_id asc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
