package repositories

import (
	"context"
	"errors"

	"upskill/models"

	"gorm.io/gorm"
)

type TrackRepository interface {
	FindAll(ctx context.Context) ([]models.Track, error)
	FindByID(ctx context.Context, id uint) (*models.Track, error)
	Create(ctx context.Context, track *models.Track) error
	Update(ctx context.Context, track *models.Track) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type trackRepository struct {
	db *gorm.DB
}

func NewTrackRepository(db *gorm.DB) TrackRepository {
	return &trackRepository{db: db}
}

func (r *trackRepository) FindAll(ctx context.Context) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.WithContext(ctx).Order("name asc").Order("id asc").Find(&tracks).Error
	return tracks, err
}

// FindByID returns nil without an error when the track does not exist
func (r *trackRepository) FindByID(ctx context.Context, id uint) (*models.Track, error) {
	var track models.Track
	if err := r.db.WithContext(ctx).First(&track, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &track, nil
}

func (r *trackRepository) Create(ctx context.Context, track *models.Track) error {
	return r.db.WithContext(ctx).Create(track).Error
}

func (r *trackRepository) Update(ctx context.Context, track *models.Track) error {
	return r.db.WithContext(ctx).Save(track).Error
}

func (r *trackRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Track{}, id).Error
}

func (r *trackRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Track{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *trackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Track{}).Count(&count).Error
	return count, err
}
