package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppPort       string
	DBDSN         string
	JWTSecret     string
	JWTExpiresMin int // default 7 days

	UploadDir  string
	AppBaseURL string

	FrontendBaseURL string
	CORSOrigins     string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	ContactEmail string // recipient of contact-form notifications

	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string
}

func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "10080"))
	smtpPort, _ := strconv.Atoi(get("SMTP_PORT", "587"))
	return Config{
		AppPort:       get("APP_PORT", "8080"),
		DBDSN:         must("DB_DSN"),
		JWTSecret:     must("JWT_SECRET"),
		JWTExpiresMin: expires,

		UploadDir:  get("UPLOAD_DIR", "./uploads"),
		AppBaseURL: get("APP_BASE_URL", ""),

		FrontendBaseURL: get("FRONTEND_BASE_URL", "http://localhost:3000"),
		CORSOrigins:     get("CORS_ORIGINS", "http://127.0.0.1:3000, http://localhost:3000"),

		SMTPHost:     get("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: get("SMTP_USERNAME", ""),
		SMTPPassword: get("SMTP_PASSWORD", ""),
		ContactEmail: get("CONTACT_EMAIL", ""),

		GoogleClientID: get("GOOGLE_CLIENT_ID", ""),
		GoogleSecret:   get("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirect: get("GOOGLE_REDIRECT_URL", ""),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
