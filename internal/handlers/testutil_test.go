package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/akshit1742/portfolio-api/internal/handlers"
	"github.com/akshit1742/portfolio-api/internal/mailer"
	"github.com/akshit1742/portfolio-api/internal/middleware"
	"github.com/akshit1742/portfolio-api/internal/store/memory"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

const testSecret = "test-secret-not-for-production"

// capturingMailer records sent messages instead of dialing SMTP.
type capturingMailer struct {
	sent []mailer.ContactMessage
	err  error
}

func (m *capturingMailer) SendContactMessage(msg mailer.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type testEnv struct {
	app    *fiber.App
	store  *memory.Store
	mailer *capturingMailer
	upload string // temp upload dir
}

// newTestEnv wires the full route table against the in-memory store, the
// same shape main() builds against postgres.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := memory.New()
	valid := utils.NewValidator()
	log := zerolog.Nop()
	mail := &capturingMailer{}
	uploadDir := t.TempDir()

	app := fiber.New(fiber.Config{BodyLimit: 25 << 20})

	authH := &handlers.AuthHandler{
		Store:     st,
		JWTSecret: testSecret,
		Expires:   60,
		Valid:     valid,
		Log:       log,
	}
	bioH := handlers.NewBioHandler(st, valid, log)
	contactInfoH := handlers.NewContactInfoHandler(st, valid, log)
	skillH := handlers.NewSkillHandler(st, valid, log)
	projectH := handlers.NewProjectHandler(st, valid, log)
	experienceH := handlers.NewExperienceHandler(st, valid, log)
	educationH := handlers.NewEducationHandler(st, valid, log)
	certificationH := handlers.NewCertificationHandler(st, valid, log)
	uploadH := handlers.NewUploadHandler(uploadDir, "", log)
	contactH := handlers.NewContactHandler(mail, valid, log)

	auth := middleware.RequireAuth(testSecret)

	api := app.Group("/api")
	api.Post("/auth/setup", authH.Setup)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/me", auth, authH.Me)

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

	return &testEnv{app: app, store: st, mailer: mail, upload: uploadDir}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.SignJWT(testSecret, "2c7e5b7e-0000-4000-8000-000000000001", "admin@example.com", "admin", 60)
	require.NoError(t, err)
	return token
}

// doJSON performs a JSON request; token == "" sends it unauthenticated.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// multipartUpload builds a multipart body with an explicit part Content-Type,
// which CreateFormFile alone cannot set.
func multipartUpload(t *testing.T, fieldType, fileName, mimeType string, content []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	require.NoError(t, w.WriteField("type", fieldType))

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	hdr.Set("Content-Type", mimeType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
