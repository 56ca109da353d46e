package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberStatus string

const (
	StatusActive  MemberStatus = "Active"
	StatusExpired MemberStatus = "Expired"
)

type Member struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	UniqueID     string `gorm:"size:50;uniqueIndex;not null"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:100"`
	Phone        string `gorm:"size:30"`
	DateOfBirth  string `gorm:"size:10"`
	MembershipID string `gorm:"type:uuid;not null;index"`
	Membership   *Membership
	StaffID      string `gorm:"type:uuid;not null;index"`
	Staff        *User  `gorm:"foreignKey:StaffID"`
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// StatusAt üyelik durumunu hesaplar, veritabanında saklanmaz.
// now == EndDate sınır durumu Expired sayılır (kesin öncelik kuralı).
func (m *Member) StatusAt(now time.Time) MemberStatus {
	if now.Before(m.EndDate) {
		return StatusActive
	}
	return StatusExpired
}
