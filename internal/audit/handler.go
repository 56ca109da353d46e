package audit

import (
	"gym-backend/internal/database"
	"gym-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ActivityLogResponse struct {
	ID          uint                  `json:"id"`
	CreatedAt   string                `json:"createdAt"`
	UserID      string                `json:"userId"`
	UserName    string                `json:"userName"`
	EntityType  string                `json:"entityType"`
	EntityID    string                `json:"entityId"`
	Action      models.ActivityAction `json:"action"`
	Description string                `json:"description"`
}

// GET /api/activity-logs?entityType=member&userId=...
func ListActivityLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entityType := c.Query("entityType")
		userID := c.Query("userId")

		dbq := database.DB.Model(&models.ActivityLog{})

		if entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if userID != "" {
			dbq = dbq.Where("user_id = ?", userID)
		}

		var logs []models.ActivityLog
		if err := dbq.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aktivite kayıtları listelenemedi")
		}

		res := make([]ActivityLogResponse, 0, len(logs))
		for _, l := range logs {
			res = append(res, ActivityLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				UserID:      l.UserID,
				UserName:    l.UserName,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
			})
		}

		return c.JSON(res)
	}
}
