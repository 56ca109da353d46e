package memberships

import (
	"fmt"
	"strings"
	"time"

	"gym-backend/internal/audit"
	"gym-backend/internal/database"
	"gym-backend/internal/listing"
	"gym-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const membershipsPerPage = 3

type MembershipResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DurationDays int       `json:"durationDays"`
	Price        float64   `json:"price"`
	BadgeColor   string    `json:"badgeColor"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateMembershipRequest struct {
	Name         string  `json:"name"`
	DurationDays int     `json:"durationDays"`
	Price        float64 `json:"price"`
}

type UpdateMembershipRequest struct {
	Name         *string  `json:"name"`
	DurationDays *int     `json:"durationDays"`
	Price        *float64 `json:"price"`
}

func toResponse(m models.Membership) MembershipResponse {
	return MembershipResponse{
		ID:           m.ID,
		Name:         m.Name,
		DurationDays: m.DurationDays,
		Price:        m.Price,
		BadgeColor:   BadgeColor(m.Name),
		CreatedAt:    m.CreatedAt,
	}
}

// GET /api/memberships?search=&sortBy=price&order=desc&page=1
// sortBy+order sayısal yeniden sıralamadır (duration|price), kategorik filtre değil.
func ListMembershipsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var memberships []models.Membership
		if err := database.DB.Order("created_at ASC").Find(&memberships).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyelikler listelenemedi")
		}

		search := c.Query("search")
		sortBy := c.Query("sortBy")
		order := c.Query("order")
		page := c.QueryInt("page", 1)

		visible := listing.Search(memberships, search, func(m models.Membership) string { return m.Name })

		if sortBy != "" && order != "" {
			desc := order == "desc"
			switch sortBy {
			case "duration":
				visible = listing.OrderBy(visible, func(a, b models.Membership) bool {
					return a.DurationDays < b.DurationDays
				}, desc)
			case "price":
				visible = listing.OrderBy(visible, func(a, b models.Membership) bool {
					return a.Price < b.Price
				}, desc)
			}
		}

		paged := listing.Paginate(visible, page, membershipsPerPage)

		items := make([]MembershipResponse, 0, len(paged.Items))
		for _, m := range paged.Items {
			items = append(items, toResponse(m))
		}

		return c.JSON(listing.Page[MembershipResponse]{
			Items:     items,
			Total:     paged.Total,
			Page:      paged.Page,
			PageSize:  paged.PageSize,
			PageCount: paged.PageCount,
		})
	}
}

func CreateMembershipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMembershipRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Üyelik adı boş olamaz")
		}
		if body.DurationDays <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Süre (gün) pozitif olmalı")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
		}

		var exist models.Membership
		if err := database.DB.Where("LOWER(name) = LOWER(?)", body.Name).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu isimde bir üyelik zaten var")
		}

		membership := models.Membership{
			Name:         body.Name,
			DurationDays: body.DurationDays,
			Price:        body.Price,
		}

		if err := database.DB.Create(&membership).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyelik oluşturulamadı")
		}

		audit.LogFromContext(c, "membership", membership.ID, models.ActivityActionCreate,
			fmt.Sprintf("Üyelik oluşturuldu: %s", membership.Name))

		return c.Status(fiber.StatusCreated).JSON(toResponse(membership))
	}
}

func UpdateMembershipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var membership models.Membership
		if err := database.DB.First(&membership, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Üyelik bulunamadı")
		}

		var body UpdateMembershipRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Üyelik adı boş olamaz")
			}
			membership.Name = name
		}
		if body.DurationDays != nil {
			if *body.DurationDays <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Süre (gün) pozitif olmalı")
			}
			membership.DurationDays = *body.DurationDays
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
			}
			membership.Price = *body.Price
		}

		if err := database.DB.Save(&membership).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyelik güncellenemedi")
		}

		audit.LogFromContext(c, "membership", membership.ID, models.ActivityActionUpdate,
			fmt.Sprintf("Üyelik güncellendi: %s", membership.Name))

		return c.JSON(toResponse(membership))
	}
}

func DeleteMembershipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var membership models.Membership
		if err := database.DB.First(&membership, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Üyelik bulunamadı")
		}

		// Silinen plana referans veren üyeler gelir hesabında sessizce atlanır;
		// bu yüzden silmeden önce aktif referans kontrolü yapıyoruz.
		var memberCount int64
		database.DB.Model(&models.Member{}).Where("membership_id = ?", id).Count(&memberCount)
		if memberCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu üyeliğe kayıtlı üyeler var, önce onları taşıyın")
		}

		if err := database.DB.Delete(&membership).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyelik silinemedi")
		}

		audit.LogFromContext(c, "membership", membership.ID, models.ActivityActionDelete,
			fmt.Sprintf("Üyelik silindi: %s", membership.Name))

		return c.SendStatus(fiber.StatusNoContent)
	}
}
