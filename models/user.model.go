package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"size:100;not null"`
	Email        string         `gorm:"size:150;uniqueIndex;not null"`
	AreaOfWork   sql.NullString `gorm:"size:100"`
	CareerLevel  sql.NullString `gorm:"size:50"`
	RegisteredAt time.Time      `gorm:"not null"`
}
