package main

import (
	"log"
	"strings"

	"gym-backend/internal/audit"
	"gym-backend/internal/auth"
	"gym-backend/internal/config"
	"gym-backend/internal/dashboard"
	"gym-backend/internal/database"
	"gym-backend/internal/members"
	"gym-backend/internal/memberships"
	"gym-backend/internal/middleware"
	"gym-backend/internal/models"
	"gym-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(corsOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	app.Use(middleware.Metrics())
	app.Get("/metrics", middleware.MetricsHandler())

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/logout", auth.LogoutHandler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth", auth.SessionHandler())

	// Üyeler (scan route'u :id'den önce kaydedilmeli)
	protected.Get("/members/scan/:uniqueId", members.ScanMemberHandler())
	protected.Get("/members", members.ListMembersHandler())
	protected.Post("/members", members.CreateMemberHandler())
	protected.Get("/members/:id", members.GetMemberHandler())
	protected.Put("/members/:id", members.UpdateMemberHandler())
	protected.Delete("/members/:id", members.DeleteMemberHandler())
	protected.Patch("/members/:id/membership", members.ExtendMembershipHandler())

	// Üyelik planları
	protected.Get("/memberships", memberships.ListMembershipsHandler())
	protected.Post("/memberships", memberships.CreateMembershipHandler())
	protected.Put("/memberships/:id", memberships.UpdateMembershipHandler())
	protected.Delete("/memberships/:id", memberships.DeleteMembershipHandler())

	// Dashboard
	protected.Get("/dashboard/revenue/monthly", dashboard.MonthlyRevenueHandler())
	protected.Get("/dashboard/stats", dashboard.StatsHandler())

	// Kullanıcı profili: admin herkese, personel kendine (kontrol handler içinde)
	protected.Get("/users/:id", users.GetUserHandler())
	protected.Put("/users/:id", users.UpdateUserHandler())
	protected.Patch("/users/:id/update-password", users.UpdatePasswordHandler())

	// Admin routes
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Get("/users", users.ListUsersHandler())
	adminRoutes.Post("/users", users.CreateUserHandler())
	adminRoutes.Patch("/users/:id/reset-password", users.ResetPasswordHandler())
	adminRoutes.Delete("/users/:id", users.DeleteUserHandler())

	adminRoutes.Get("/activity-logs", audit.ListActivityLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
