package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"keude/internal/handler"
	"keude/internal/middleware"
	"keude/internal/model"
	"keude/internal/repository"
	"keude/internal/service"
	"keude/internal/ws"
	"keude/pkg/database"
	"keude/pkg/logger"
)

func main() {
	log := logger.Get()

	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found")
	}

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.User{}, &model.Privilege{}, &model.Role{},
		&model.Member{}, &model.Transaction{}, &model.Payment{},
		&model.Document{}, &model.DocumentItem{},
		&model.AppSetting{}, &model.ActivityLog{},
	); err != nil {
		log.WithError(err).Fatal("auto-migration failed")
	}

	seedRolesAndUsers(db)

	wsHub := ws.NewHub()
	go wsHub.Run()

	// Wiring
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	memberRepo := repository.NewMemberRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	docRepo := repository.NewDocumentRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	activityRepo := repository.NewActivityLogRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	memberService := service.NewMemberService(memberRepo, activityRepo, wsHub)
	txService := service.NewTransactionService(txRepo, activityRepo, wsHub)
	fundService := service.NewFundService(memberRepo, paymentRepo, activityRepo, wsHub)
	docService := service.NewDocumentService(docRepo, activityRepo, wsHub)
	dividendService := service.NewDividendService(settingRepo, txRepo, memberRepo, activityRepo, wsHub)
	reportService := service.NewReportService(txRepo)
	activityService := service.NewActivityService(activityRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	memberHandler := handler.NewMemberHandler(memberService)
	txHandler := handler.NewTransactionHandler(txService)
	fundHandler := handler.NewFundHandler(fundService)
	docHandler := handler.NewDocumentHandler(docService)
	dividendHandler := handler.NewDividendHandler(dividendService)
	reportHandler := handler.NewReportHandler(reportService)
	activityHandler := handler.NewActivityHandler(activityService)

	app := fiber.New(fiber.Config{
		AppName: "Keude Pembukuan v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// Everything below requires authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard
	protected.Get("/dashboard/stats", middleware.RequirePrivilege("dashboard:view"), reportHandler.GetDashboardStats)
	protected.Get("/dashboard/projection", middleware.RequirePrivilege("dashboard:view"), reportHandler.GetProjection)

	// Transactions
	protected.Get("/transactions", middleware.RequirePrivilege("transaction:view"), txHandler.GetTransactions)
	protected.Get("/transactions/:id", middleware.RequirePrivilege("transaction:view"), txHandler.GetTransaction)
	protected.Post("/transactions", middleware.RequirePrivilege("transaction:create"), txHandler.CreateTransaction)
	protected.Put("/transactions/:id", middleware.RequirePrivilege("transaction:update"), txHandler.UpdateTransaction)
	protected.Delete("/transactions/:id", middleware.RequirePrivilege("transaction:delete"), txHandler.DeleteTransaction)

	// Members
	protected.Get("/members", middleware.RequirePrivilege("member:view"), memberHandler.GetMembers)
	protected.Get("/members/:id", middleware.RequirePrivilege("member:view"), memberHandler.GetMember)
	protected.Post("/members", middleware.RequirePrivilege("member:create"), memberHandler.CreateMember)
	protected.Put("/members/:id", middleware.RequirePrivilege("member:update"), memberHandler.UpdateMember)
	protected.Delete("/members/:id", middleware.RequirePrivilege("member:delete"), memberHandler.DeleteMember)

	// Employee savings
	protected.Get("/funds/matrix", middleware.RequirePrivilege("fund:view"), fundHandler.GetMatrix)
	protected.Post("/funds/toggle", middleware.RequirePrivilege("fund:toggle"), fundHandler.TogglePayment)

	// Documents
	protected.Get("/documents", middleware.RequirePrivilege("document:view"), docHandler.GetDocuments)
	protected.Get("/documents/next-number", middleware.RequirePrivilege("document:view"), docHandler.NextNumber)
	protected.Get("/documents/:id", middleware.RequirePrivilege("document:view"), docHandler.GetDocument)
	protected.Post("/documents", middleware.RequirePrivilege("document:create"), docHandler.CreateDocument)
	protected.Put("/documents/:id", middleware.RequirePrivilege("document:update"), docHandler.UpdateDocument)
	protected.Delete("/documents/:id", middleware.RequirePrivilege("document:delete"), docHandler.DeleteDocument)

	// Dividends & capital
	protected.Get("/dividends/settings", middleware.RequirePrivilege("dividend:view"), dividendHandler.GetSettings)
	protected.Put("/dividends/settings", middleware.RequirePrivilege("dividend:update"), dividendHandler.SaveSettings)
	protected.Get("/dividends/capital", middleware.RequirePrivilege("dividend:view"), dividendHandler.GetCapital)
	protected.Put("/dividends/capital", middleware.RequirePrivilege("dividend:update"), dividendHandler.SaveCapital)
	protected.Get("/dividends/allocation", middleware.RequirePrivilege("dividend:view"), dividendHandler.GetAllocation)

	// Reports
	protected.Get("/reports/summary", middleware.RequirePrivilege("report:view"), reportHandler.GetSummary)
	protected.Get("/reports/income-statement", middleware.RequirePrivilege("report:view"), reportHandler.GetIncomeStatement)
	protected.Get("/reports/cash-flow", middleware.RequirePrivilege("report:view"), reportHandler.GetCashFlow)
	protected.Get("/reports/balance-sheet", middleware.RequirePrivilege("report:view"), reportHandler.GetBalanceSheet)
	protected.Get("/reports/export.csv", middleware.RequirePrivilege("report:export"), reportHandler.ExportCSV)
	protected.Get("/reports/export.xlsx", middleware.RequirePrivilege("report:export"), reportHandler.ExportXLSX)

	// Activity log
	protected.Get("/activity-logs", activityHandler.GetLogs)
	protected.Delete("/activity-logs", middleware.RequirePrivilege("user:delete"), activityHandler.ClearLogs)

	// Roles & privileges reference lists
	protected.Get("/roles", func(c *fiber.Ctx) error {
		roles, err := roleRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
		}
		return c.JSON(roles)
	})
	protected.Get("/privileges", func(c *fiber.Ctx) error {
		privileges, err := privilegeRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch privileges"})
		}
		return c.JSON(privileges)
	})

	// User management
	protected.Get("/users", middleware.RequirePrivilege("user:view"), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequirePrivilege("user:view"), userHandler.GetUser)
	protected.Post("/users", middleware.RequirePrivilege("user:create"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePrivilege("user:update"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePrivilege("user:delete"), userHandler.DeleteUser)

	// WebSocket: pushes data_changed events so clients refetch
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
	log.Info("server exited")
}

// seedRolesAndUsers creates default privileges, roles, and the two stock
// accounts on first boot.
func seedRolesAndUsers(db *gorm.DB) {
	log := logger.Get()

	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.WithError(err).Warn("failed to seed privileges")
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		log.WithError(err).Warn("failed to seed roles")
	}

	allPrivileges, _ := privilegeRepo.FindAll()

	// ADMIN gets everything.
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		db.Model(adminRole).Association("Privileges").Replace(allPrivileges)
		log.Info("ADMIN role assigned all privileges")
	}

	// STAF handles day-to-day bookkeeping but not settings or users.
	stafRole, err := roleRepo.FindByCode(model.RoleStaf)
	if err == nil && len(stafRole.Privileges) == 0 {
		var stafPrivileges []model.Privilege
		for _, p := range allPrivileges {
			switch p.Code {
			case "user:view", "user:create", "user:update", "user:delete",
				"dividend:update", "transaction:delete", "member:delete", "document:delete":
				continue
			}
			stafPrivileges = append(stafPrivileges, p)
		}
		db.Model(stafRole).Association("Privileges").Replace(stafPrivileges)
		log.Info("STAF role assigned limited privileges")
	}

	seedUser := func(username, fullName, password, roleCode string) {
		if _, err := userRepo.FindByUsername(username); err == nil {
			return
		}
		role, err := roleRepo.FindByCode(roleCode)
		if err != nil {
			log.WithError(err).WithField("role", roleCode).Warn("role missing, skipping user seed")
			return
		}
		user := &model.User{
			Username:   username,
			FullName:   fullName,
			RoleID:     &role.ID,
			IsActive:   true,
			Privileges: role.Privileges,
		}
		user.CreatedBy = "system"
		user.UpdatedBy = "system"
		if err := user.SetPassword(password); err != nil {
			log.WithError(err).Warn("failed to hash seed password")
			return
		}
		if err := userRepo.Create(user); err != nil {
			log.WithError(err).WithField("username", username).Warn("failed to seed user")
			return
		}
		log.WithField("username", username).Info("seeded user")
	}

	seedUser("admin", "Administrator", "admin123", model.RoleAdmin)
	seedUser("pengurus", "Staf Pengurus", "user123", model.RoleStaf)
}
