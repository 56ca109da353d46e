package models

import "time"

type ActivityAction string

const (
	ActivityActionCreate ActivityAction = "create"
	ActivityActionUpdate ActivityAction = "update"
	ActivityActionDelete ActivityAction = "delete"
)

// ActivityLog üye/üyelik/kullanıcı mutasyonlarının kaydı.
type ActivityLog struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      string         `gorm:"type:uuid;not null;index"`
	UserName    string         `gorm:"size:100"`
	EntityType  string         `gorm:"size:50;not null"`
	EntityID    string         `gorm:"size:50;not null"`
	Action      ActivityAction `gorm:"size:20;not null"`
	Description string         `gorm:"size:500"`
	CreatedAt   time.Time
}
