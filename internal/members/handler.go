package members

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gym-backend/internal/audit"
	"gym-backend/internal/database"
	"gym-backend/internal/listing"
	"gym-backend/internal/memberships"
	"gym-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const membersPerPage = 5

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type NameRef struct {
	Name string `json:"name"`
}

type MemberResponse struct {
	ID           string              `json:"id"`
	UniqueID     string              `json:"uniqueId"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	DateOfBirth  string              `json:"dateOfBirth"`
	MembershipID string              `json:"membershipId"`
	StaffID      string              `json:"staffId"`
	Membership   NameRef             `json:"membership"`
	CreatedBy    NameRef             `json:"createdBy"`
	StartDate    time.Time           `json:"startDate"`
	EndDate      time.Time           `json:"endDate"`
	Status       models.MemberStatus `json:"status"`
	BadgeColor   string              `json:"badgeColor"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type CreateMemberRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DateOfBirth  string `json:"dateOfBirth"`
	UniqueID     string `json:"uniqueId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	MembershipID string `json:"membershipId"`
	StaffID      string `json:"staffId"`
}

type UpdateMemberRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
	UniqueID    *string `json:"uniqueId"`
}

// Rozetler ve durum her satırda aynı "now" ile türetilir; render başına
// tek zaman kaynağı kuralı.
func toResponse(m models.Member, now time.Time) MemberResponse {
	res := MemberResponse{
		ID:           m.ID,
		UniqueID:     m.UniqueID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		DateOfBirth:  m.DateOfBirth,
		MembershipID: m.MembershipID,
		StaffID:      m.StaffID,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       m.StatusAt(now),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Membership != nil {
		res.Membership = NameRef{Name: m.Membership.Name}
		res.BadgeColor = memberships.BadgeColor(m.Membership.Name)
	}
	if m.Staff != nil {
		res.CreatedBy = NameRef{Name: m.Staff.Name}
	}
	return res
}

// Tarih alanları SPA'dan "2006-01-02" gelir, API istemcileri RFC3339 gönderebilir.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// GET /api/members?search=&sortBy=status&sortValue=active&page=1
// sortBy+sortValue kategorik filtredir (status|membership|createdBy) ve
// arama ile AND olarak birleşir.
func ListMembersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var members []models.Member
		if err := database.DB.
			Preload("Membership").
			Preload("Staff").
			Order("created_at ASC").
			Find(&members).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üyeler listelenemedi")
		}

		search := c.Query("search")
		sortBy := c.Query("sortBy")
		sortValue := c.Query("sortValue")
		page := c.QueryInt("page", 1)
		now := time.Now()

		visible := listing.Search(members, search, func(m models.Member) string { return m.Name })

		if sortBy != "" && sortValue != "" {
			want := strings.ToLower(strings.TrimSpace(sortValue))
			switch sortBy {
			case "status":
				visible = listing.Filter(visible, func(m models.Member) bool {
					return strings.ToLower(string(m.StatusAt(now))) == want
				})
			case "membership":
				visible = listing.Filter(visible, func(m models.Member) bool {
					return m.Membership != nil && strings.ToLower(strings.TrimSpace(m.Membership.Name)) == want
				})
			case "createdBy":
				visible = listing.Filter(visible, func(m models.Member) bool {
					return m.Staff != nil && strings.ToLower(strings.TrimSpace(m.Staff.Name)) == want
				})
			}
		}

		paged := listing.Paginate(visible, page, membersPerPage)

		items := make([]MemberResponse, 0, len(paged.Items))
		for _, m := range paged.Items {
			items = append(items, toResponse(m, now))
		}

		return c.JSON(listing.Page[MemberResponse]{
			Items:     items,
			Total:     paged.Total,
			Page:      paged.Page,
			PageSize:  paged.PageSize,
			PageCount: paged.PageCount,
		})
	}
}

func CreateMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMemberRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.UniqueID = strings.TrimSpace(body.UniqueID)
		body.Email = strings.TrimSpace(body.Email)

		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Üye adı boş olamaz")
		}
		if body.UniqueID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Unique ID zorunlu")
		}
		if body.Email != "" && !emailPattern.MatchString(body.Email) {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz email adresi")
		}

		var membership models.Membership
		if err := database.DB.First(&membership, "id = ?", body.MembershipID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Üyelik bulunamadı")
		}

		var staff models.User
		if err := database.DB.First(&staff, "id = ?", body.StaffID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Personel bulunamadı")
		}

		var exist models.Member
		if err := database.DB.Where("unique_id = ?", body.UniqueID).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu Unique ID zaten kayıtlı")
		}

		now := time.Now()

		startDate := now
		if body.StartDate != "" {
			parsed, err := parseDate(body.StartDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Başlangıç tarihi geçersiz")
			}
			startDate = parsed
		}

		endDate := startDate.AddDate(0, 0, membership.DurationDays)
		if body.EndDate != "" {
			parsed, err := parseDate(body.EndDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bitiş tarihi geçersiz")
			}
			endDate = parsed
		}

		if endDate.Before(startDate) {
			return fiber.NewError(fiber.StatusBadRequest, "Bitiş tarihi başlangıçtan önce olamaz")
		}

		member := models.Member{
			UniqueID:     body.UniqueID,
			Name:         body.Name,
			Email:        body.Email,
			Phone:        strings.TrimSpace(body.Phone),
			DateOfBirth:  strings.TrimSpace(body.DateOfBirth),
			MembershipID: membership.ID,
			StaffID:      staff.ID,
			StartDate:    startDate,
			EndDate:      endDate,
		}

		if err := database.DB.Create(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üye oluşturulamadı")
		}

		audit.LogFromContext(c, "member", member.ID, models.ActivityActionCreate,
			fmt.Sprintf("Üye kaydedildi: %s (%s)", member.Name, member.UniqueID))

		member.Membership = &membership
		member.Staff = &staff

		// 201 yanıtı sunucu tarafından atanan tüm alanları taşır (id, createdAt);
		// SPA listeye yeniden fetch yapmadan ekler.
		return c.Status(fiber.StatusCreated).JSON(toResponse(member, now))
	}
}

func GetMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var member models.Member
		if err := database.DB.
			Preload("Membership").
			Preload("Staff").
			First(&member, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Üye bulunamadı")
		}

		return c.JSON(toResponse(member, time.Now()))
	}
}

func UpdateMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var member models.Member
		if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Üye bulunamadı")
		}

		var body UpdateMemberRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Üye adı boş olamaz")
			}
			member.Name = name
		}
		if body.Email != nil {
			email := strings.TrimSpace(*body.Email)
			if email != "" && !emailPattern.MatchString(email) {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz email adresi")
			}
			member.Email = email
		}
		if body.Phone != nil {
			member.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.DateOfBirth != nil {
			member.DateOfBirth = strings.TrimSpace(*body.DateOfBirth)
		}
		if body.UniqueID != nil {
			uniqueID := strings.TrimSpace(*body.UniqueID)
			if uniqueID == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Unique ID zorunlu")
			}
			var exist models.Member
			if err := database.DB.Where("unique_id = ? AND id <> ?", uniqueID, member.ID).First(&exist).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bu Unique ID zaten kayıtlı")
			}
			member.UniqueID = uniqueID
		}

		if err := database.DB.Save(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üye güncellenemedi")
		}

		audit.LogFromContext(c, "member", member.ID, models.ActivityActionUpdate,
			fmt.Sprintf("Üye güncellendi: %s", member.Name))

		database.DB.Preload("Membership").Preload("Staff").First(&member, "id = ?", member.ID)

		return c.JSON(toResponse(member, time.Now()))
	}
}

func DeleteMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var member models.Member
		if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Üye bulunamadı")
		}

		if err := database.DB.Delete(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üye silinemedi")
		}

		audit.LogFromContext(c, "member", member.ID, models.ActivityActionDelete,
			fmt.Sprintf("Üye silindi: %s (%s)", member.Name, member.UniqueID))

		return c.SendStatus(fiber.StatusNoContent)
	}
}
