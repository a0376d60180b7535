package models

import (
	"database/sql"
	"time"
)

// Enrollment statuses
const (
	EnrollmentActive    = "ATIVA"
	EnrollmentCompleted = "CONCLUIDA"
	EnrollmentCancelled = "CANCELADA"
)

type Enrollment struct {
	ID          uint          `gorm:"primaryKey"`
	UserID      uint          `gorm:"index;not null"`
	TrackID     uint          `gorm:"index;not null"`
	EnrolledAt  time.Time     `gorm:"not null"`
	Status      string        `gorm:"size:20;index;not null;default:'ATIVA'"`
	Progress    sql.NullInt32 `gorm:"check:progress >= 0 AND progress <= 100"`
	CompletedAt sql.NullTime
	CancelledAt sql.NullTime
	Rating      sql.NullInt32 `gorm:"check:rating >= 1 AND rating <= 5"`
	User        User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Track       Track         `gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE"`
}

// IsTerminal reports whether the enrollment accepts no further status changes
func (e *Enrollment) IsTerminal() bool {
	return e.Status == EnrollmentCompleted || e.Status == EnrollmentCancelled
}

// EnrollmentDetail is an enrollment row joined with the names of the user and track it references
type EnrollmentDetail struct {
	ID                 uint
	UserID             uint
	UserName           string
	UserEmail          string
	TrackID            uint
	TrackName          string
	TrackLevel         string
	TrackWorkloadHours int
	EnrolledAt         time.Time
	Status             string
	Progress           sql.NullInt32
	CompletedAt        sql.NullTime
	CancelledAt        sql.NullTime
	Rating             sql.NullInt32
}

// TrackPopularity is one row of the enrollment volume ranking
type TrackPopularity struct {
	TrackID     uint
	TrackName   string
	Total       int64
	Completions int64
}
