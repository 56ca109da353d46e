package users

import (
	"fmt"
	"strings"
	"time"

	"gym-backend/internal/audit"
	"gym-backend/internal/auth"
	"gym-backend/internal/database"
	"gym-backend/internal/listing"
	"gym-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const usersPerPage = 5

type UserResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	BadgeColor string          `json:"badgeColor"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Username *string          `json:"username"`
	Email    *string          `json:"email"`
	Role     *models.UserRole `json:"role"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

func toResponse(u models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		BadgeColor: RoleBadgeColor(string(u.Role)),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// Profil görüntüleme/düzenleme: admin herkese, personel sadece kendine.
func requireSelfOrAdmin(c *fiber.Ctx, targetID string) error {
	role, err := auth.CurrentUserRole(c)
	if err != nil {
		return err
	}
	if role == models.RoleAdmin {
		return nil
	}

	currentID, err := auth.CurrentUserID(c)
	if err != nil {
		return err
	}
	if currentID != targetID {
		return fiber.NewError(fiber.StatusForbidden, "Sadece kendi hesabınıza erişebilirsiniz")
	}
	return nil
}

// GET /api/users?search=&sortBy=role&sortValue=staff&page=1 (sadece admin)
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("created_at ASC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar listelenemedi")
		}

		search := c.Query("search")
		sortBy := c.Query("sortBy")
		sortValue := c.Query("sortValue")
		page := c.QueryInt("page", 1)

		visible := listing.Search(users, search, func(u models.User) string { return u.Name })

		if sortBy == "role" && sortValue != "" {
			want := strings.ToLower(strings.TrimSpace(sortValue))
			visible = listing.Filter(visible, func(u models.User) bool {
				return strings.ToLower(string(u.Role)) == want
			})
		}

		paged := listing.Paginate(visible, page, usersPerPage)

		items := make([]UserResponse, 0, len(paged.Items))
		for _, u := range paged.Items {
			items = append(items, toResponse(u))
		}

		return c.JSON(listing.Page[UserResponse]{
			Items:     items,
			Total:     paged.Total,
			Page:      paged.Page,
			PageSize:  paged.PageSize,
			PageCount: paged.PageCount,
		})
	}
}

func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Username = strings.TrimSpace(strings.ToLower(body.Username))
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Username == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, kullanıcı adı, email ve şifre zorunlu")
		}
		if len(body.Password) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "Şifre en az 8 karakter olmalı")
		}
		if body.Role != models.RoleAdmin && body.Role != models.RoleStaff {
			return fiber.NewError(fiber.StatusBadRequest, "Rol ADMIN veya STAFF olmalı")
		}

		var exist models.User
		if err := database.DB.Where("email = ? OR username = ?", body.Email, body.Username).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu email veya kullanıcı adı zaten kayıtlı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Name:         body.Name,
			Username:     body.Username,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         body.Role,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		audit.LogFromContext(c, "user", user.ID, models.ActivityActionCreate,
			fmt.Sprintf("Kullanıcı oluşturuldu: %s (%s)", user.Name, user.Role))

		return c.Status(fiber.StatusCreated).JSON(toResponse(user))
	}
}

func GetUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := requireSelfOrAdmin(c, id); err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		return c.JSON(toResponse(user))
	}
}

func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := requireSelfOrAdmin(c, id); err != nil {
			return err
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "İsim boş olamaz")
			}
			user.Name = name
		}
		if body.Username != nil {
			username := strings.TrimSpace(strings.ToLower(*body.Username))
			if username == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Kullanıcı adı boş olamaz")
			}
			var exist models.User
			if err := database.DB.Where("username = ? AND id <> ?", username, user.ID).First(&exist).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bu kullanıcı adı zaten kayıtlı")
			}
			user.Username = username
		}
		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			if email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Email boş olamaz")
			}
			var exist models.User
			if err := database.DB.Where("email = ? AND id <> ?", email, user.ID).First(&exist).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Bu email zaten kayıtlı")
			}
			user.Email = email
		}
		if body.Role != nil {
			// Rol değişikliği sadece admin yetkisidir
			role, err := auth.CurrentUserRole(c)
			if err != nil {
				return err
			}
			if role != models.RoleAdmin {
				return fiber.NewError(fiber.StatusForbidden, "Rol değiştirme yetkiniz yok")
			}
			if *body.Role != models.RoleAdmin && *body.Role != models.RoleStaff {
				return fiber.NewError(fiber.StatusBadRequest, "Rol ADMIN veya STAFF olmalı")
			}
			user.Role = *body.Role
		}

		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı güncellenemedi")
		}

		audit.LogFromContext(c, "user", user.ID, models.ActivityActionUpdate,
			fmt.Sprintf("Kullanıcı güncellendi: %s", user.Name))

		return c.JSON(toResponse(user))
	}
}

// PATCH /api/users/:id/update-password — sadece hesabın sahibi.
func UpdatePasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		currentID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		if currentID != id {
			return fiber.NewError(fiber.StatusForbidden, "Sadece kendi şifrenizi değiştirebilirsiniz")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		var body UpdatePasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if len(body.NewPassword) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "Yeni şifre en az 8 karakter olmalı")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.CurrentPassword)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Mevcut şifre hatalı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user.PasswordHash = string(hash)
		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre güncellenemedi")
		}

		return c.JSON(fiber.Map{"message": "Şifre güncellendi"})
	}
}

// PATCH /api/users/:id/reset-password — admin, başka bir hesap için.
func ResetPasswordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		currentID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		if currentID == id {
			return fiber.NewError(fiber.StatusBadRequest, "Kendi şifreniz için şifre değiştirme işlemini kullanın")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		var body ResetPasswordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if len(body.NewPassword) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "Yeni şifre en az 8 karakter olmalı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user.PasswordHash = string(hash)
		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre sıfırlanamadı")
		}

		audit.LogFromContext(c, "user", user.ID, models.ActivityActionUpdate,
			fmt.Sprintf("Şifre sıfırlandı: %s", user.Username))

		return c.JSON(fiber.Map{"message": "Şifre sıfırlandı"})
	}
}

func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		currentID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		if currentID == id {
			return fiber.NewError(fiber.StatusBadRequest, "Kendi hesabınızı silemezsiniz")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}

		// Bu personelin kaydettiği üyeler varsa silme; createdBy ilişkisi kopmasın
		var memberCount int64
		database.DB.Model(&models.Member{}).Where("staff_id = ?", id).Count(&memberCount)
		if memberCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu kullanıcının kaydettiği üyeler var, hesap silinemez")
		}

		if err := database.DB.Delete(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı silinemedi")
		}

		audit.LogFromContext(c, "user", user.ID, models.ActivityActionDelete,
			fmt.Sprintf("Kullanıcı silindi: %s", user.Username))

		return c.SendStatus(fiber.StatusNoContent)
	}
}
