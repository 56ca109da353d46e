package dashboard

import (
	"time"

	"gym-backend/internal/auth"
	"gym-backend/internal/database"
	"gym-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RecentMemberResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UniqueID   string    `json:"uniqueId"`
	Membership string    `json:"membership"`
	CreatedAt  time.Time `json:"createdAt"`
}

type StatsResponse struct {
	TotalMembers      int64                  `json:"totalMembers"`
	ActiveMembers     int64                  `json:"activeMembers"`
	CreatedByMe       int64                  `json:"createdByMe"`
	TodaysMembers     int64                  `json:"todaysMembers"`
	ThisWeeksMembers  int64                  `json:"thisWeeksMembers"`
	ThisMonthsMembers int64                  `json:"thisMonthsMembers"`
	RecentMembers     []RecentMemberResponse `json:"recentMembers"`
}

// GET /api/dashboard/revenue/monthly
func MonthlyRevenueHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var members []models.Member
		if err := database.DB.Find(&members).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyeler okunamadı")
		}

		var memberships []models.Membership
		if err := database.DB.Find(&memberships).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyelikler okunamadı")
		}

		return c.JSON(LastThreeMonthsRevenue(members, memberships, time.Now()))
	}
}

// GET /api/dashboard/stats
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var members []models.Member
		if err := database.DB.
			Preload("Membership").
			Order("created_at DESC").
			Find(&members).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyeler okunamadı")
		}

		now := time.Now()
		loc := now.Location()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		// Hafta pazar günü başlar (SPA'daki date-fns varsayılanıyla uyumlu)
		startOfWeek := startOfDay.AddDate(0, 0, -int(startOfDay.Weekday()))
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

		stats := StatsResponse{RecentMembers: []RecentMemberResponse{}}
		stats.TotalMembers = int64(len(members))

		for _, m := range members {
			if m.StatusAt(now) == models.StatusActive {
				stats.ActiveMembers++
			}
			if m.StaffID == userID {
				stats.CreatedByMe++
			}
			if !m.UpdatedAt.Before(startOfDay) {
				stats.TodaysMembers++
			}
			if !m.UpdatedAt.Before(startOfWeek) {
				stats.ThisWeeksMembers++
			}
			if !m.UpdatedAt.Before(startOfMonth) {
				stats.ThisMonthsMembers++
			}
		}

		for i, m := range members {
			if i >= 5 {
				break
			}
			recent := RecentMemberResponse{
				ID:        m.ID,
				Name:      m.Name,
				UniqueID:  m.UniqueID,
				CreatedAt: m.CreatedAt,
			}
			if m.Membership != nil {
				recent.Membership = m.Membership.Name
			}
			stats.RecentMembers = append(stats.RecentMembers, recent)
		}

		return c.JSON(stats)
	}
}
