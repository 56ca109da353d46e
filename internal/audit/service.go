package audit

import (
	"fmt"
	"log"

	"gym-backend/internal/auth"
	"gym-backend/internal/database"
	"gym-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LogOptions struct {
	UserID      string
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.ActivityAction
	Description string
}

func WriteLog(opts LogOptions) error {
	entry := models.ActivityLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("aktivite kaydı yazılamadı: %w", err)
	}

	return nil
}

// LogFromContext oturum bilgisini context'ten alıp kayıt yazar.
// Log yazılamaması asıl işlemi geri döndürmez, sadece loglanır.
func LogFromContext(c *fiber.Ctx, entityType, entityID string, action models.ActivityAction, description string) {
	userID, _ := c.Locals(auth.CtxUserIDKey).(string)
	userName, _ := c.Locals(auth.CtxUsernameKey).(string)

	if err := WriteLog(LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Description: description,
	}); err != nil {
		log.Println("Aktivite kaydı hatası:", err)
	}
}
