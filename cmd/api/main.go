package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/config"
	"github.com/akshit1742/portfolio-api/internal/db"
	"github.com/akshit1742/portfolio-api/internal/handlers"
	"github.com/akshit1742/portfolio-api/internal/mailer"
	"github.com/akshit1742/portfolio-api/internal/middleware"
	"github.com/akshit1742/portfolio-api/internal/store/postgres"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer func() { _ = db.Close(gdb) }()

	if err := db.Migrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	st := postgres.New(gdb)
	valid := utils.NewValidator()

	smtp := mailer.NewSMTP(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPUsername,
		To:       cfg.ContactEmail,
	})

	app := fiber.New(fiber.Config{
		// above the 10MB upload cap so oversized files reach the
		// handler's own check instead of a bare 413
		BodyLimit: 25 << 20,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	// uploaded files are public by URL
	app.Static("/uploads", cfg.UploadDir)

	authH := &handlers.AuthHandler{
		Store:     st,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
		Valid:     valid,
		Log:       log,
	}
	googleH := &handlers.GoogleOAuthHandler{
		Store:           st,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
		Log:             log,
	}

	bioH := handlers.NewBioHandler(st, valid, log)
	contactInfoH := handlers.NewContactInfoHandler(st, valid, log)
	skillH := handlers.NewSkillHandler(st, valid, log)
	projectH := handlers.NewProjectHandler(st, valid, log)
	experienceH := handlers.NewExperienceHandler(st, valid, log)
	educationH := handlers.NewEducationHandler(st, valid, log)
	certificationH := handlers.NewCertificationHandler(st, valid, log)
	uploadH := handlers.NewUploadHandler(cfg.UploadDir, cfg.AppBaseURL, log)
	contactH := handlers.NewContactHandler(smtp, valid, log)

	auth := middleware.RequireAuth(cfg.JWTSecret)

	api := app.Group("/api")

	// auth
	api.Post("/auth/setup", authH.Setup)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/me", auth, authH.Me)
	api.Get("/auth/google/start", googleH.Start)
	api.Get("/auth/google/callback", googleH.Callback)

	// portfolio: reads are public, writes are guarded
	portfolio := api.Group("/portfolio")

	portfolio.Get("/bio", bioH.Get)
	portfolio.Post("/bio", auth, bioH.Upsert)

	portfolio.Get("/contact-info", contactInfoH.Get)
	portfolio.Post("/contact-info", auth, contactInfoH.Upsert)

	portfolio.Get("/skills", skillH.List)
	portfolio.Post("/skills", auth, skillH.Create)
	portfolio.Put("/skills/:id", auth, skillH.Update)
	portfolio.Delete("/skills/:id", auth, skillH.Delete)

	portfolio.Get("/projects", projectH.List)
	portfolio.Post("/projects", auth, projectH.Create)
	portfolio.Put("/projects/:id", auth, projectH.Update)
	portfolio.Delete("/projects/:id", auth, projectH.Delete)

	portfolio.Get("/experience", experienceH.List)
	portfolio.Post("/experience", auth, experienceH.Create)
	portfolio.Put("/experience/:id", auth, experienceH.Update)
	portfolio.Delete("/experience/:id", auth, experienceH.Delete)

	portfolio.Get("/education", educationH.List)
	portfolio.Post("/education", auth, educationH.Create)
	portfolio.Put("/education/:id", auth, educationH.Update)
	portfolio.Delete("/education/:id", auth, educationH.Delete)

	portfolio.Get("/certifications", certificationH.List)
	portfolio.Post("/certifications", auth, certificationH.Create)
	portfolio.Put("/certifications/:id", auth, certificationH.Update)
	portfolio.Delete("/certifications/:id", auth, certificationH.Delete)

	api.Post("/upload", auth, uploadH.Upload)
	api.Post("/contact", contactH.Send)

	log.Info().Str("port", cfg.AppPort).Msg("starting portfolio api")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
