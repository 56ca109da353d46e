package members

import (
	"fmt"
	"strings"
	"time"

	"gym-backend/internal/audit"
	"gym-backend/internal/database"
	"gym-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ExtendMembershipRequest struct {
	MembershipID string `json:"membershipId"`
}

// extendWindow uzatma sonrası yeni geçerlilik penceresini hesaplar.
// Aktif üyede süre mevcut bitişin üstüne eklenir; süresi dolmuş üyede
// pencere bugünden yeniden başlar.
func extendWindow(now, startDate, endDate time.Time, durationDays int) (time.Time, time.Time) {
	if now.Before(endDate) {
		return startDate, endDate.AddDate(0, 0, durationDays)
	}
	return now, now.AddDate(0, 0, durationDays)
}

// GET /api/members/scan/:uniqueId — kart okutma ile giriş kontrolü.
func ScanMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uniqueID := strings.TrimSpace(c.Params("uniqueId"))
		if uniqueID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Unique ID zorunlu")
		}

		var member models.Member
		if err := database.DB.
			Preload("Membership").
			Preload("Staff").
			First(&member, "unique_id = ?", uniqueID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bu Unique ID ile üye bulunamadı")
		}

		return c.JSON(toResponse(member, time.Now()))
	}
}

// PATCH /api/members/:id/membership — üyelik uzatma.
func ExtendMembershipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var member models.Member
		if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Üye bulunamadı")
		}

		var body ExtendMembershipRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if body.MembershipID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "membershipId zorunlu")
		}

		var membership models.Membership
		if err := database.DB.First(&membership, "id = ?", body.MembershipID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Üyelik bulunamadı")
		}

		now := time.Now()
		member.StartDate, member.EndDate = extendWindow(now, member.StartDate, member.EndDate, membership.DurationDays)
		member.MembershipID = membership.ID

		if err := database.DB.Save(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyelik uzatılamadı")
		}

		audit.LogFromContext(c, "member", member.ID, models.ActivityActionUpdate,
			fmt.Sprintf("Üyelik uzatıldı: %s -> %s", member.Name, membership.Name))

		database.DB.Preload("Membership").Preload("Staff").First(&member, "id = ?", member.ID)

		return c.JSON(toResponse(member, now))
	}
}
