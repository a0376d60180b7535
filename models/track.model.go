package models

import "database/sql"

// Track levels
const (
	LevelBeginner     = "INICIANTE"
	LevelIntermediate = "INTERMEDIARIO"
	LevelAdvanced     = "AVANCADO"
)

// Track is a structured learning path
type Track struct {
	ID            uint           `gorm:"primaryKey"`
	Name          string         `gorm:"size:150;not null"`
	Description   sql.NullString `gorm:"size:500"`
	Level         string         `gorm:"size:20;not null"`
	WorkloadHours int            `gorm:"not null;check:workload_hours > 0"`
	FocusArea     sql.NullString `gorm:"size:100"`
}
