package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership satın alınabilir plan (örn. "Daily", "Monthly").
type Membership struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"size:100;uniqueIndex;not null"`
	DurationDays int    `gorm:"not null"`
	Price        float64
	CreatedAt    time.Time
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
