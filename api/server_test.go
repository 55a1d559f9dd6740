package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/projectveo/backend/auth"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/database/dbtest"
	"github.com/projectveo/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t           *testing.T
	db          database.Database
	router      http.Handler
	tokens      *auth.TokenIssuer
	admin       *models.User
	client      *models.User
	adminToken  string
	clientToken string
}

func newTestEnv(t *testing.T, cfg map[string]string, opts ...Option) *testEnv {
	t.Helper()

	base := map[string]string{"BCRYPT_COST": "4", "BOOKING_RATE_LIMIT": "1000-M"}
	for k, v := range cfg {
		base[k] = v
	}

	db := dbtest.New(t)
	tokens := auth.NewTokenIssuer("test-secret")
	router, _, err := newRouter(db, append([]Option{WithConfig(base), WithTokenIssuer(tokens)}, opts...)...)
	require.NoError(t, err)

	env := &testEnv{t: t, db: db, router: router, tokens: tokens}
	env.admin, env.adminToken = env.seedUser("admin@example.com", models.RoleAdmin)
	env.client, env.clientToken = env.seedUser("client@example.com", models.RoleClient)
	return env
}

func (e *testEnv) seedUser(email, role string) (*models.User, string) {
	e.t.Helper()
	digest, err := auth.NewBcryptHasher(4).Hash("password1")
	require.NoError(e.t, err)
	user := &models.User{Email: email, Name: role + " user", Role: role, HashedPassword: digest}
	require.NoError(e.t, e.db.UserRepo().Add(context.Background(), user))
	token, err := e.tokens.Issue(user.ID, user.Role)
	require.NoError(e.t, err)
	return user, token
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (e *testEnv) createProject(title string) models.Project {
	e.t.Helper()
	rec := e.do(http.MethodPost, "/api/clients", e.adminToken, map[string]any{"name": "Acme", "email": "acme@example.com"})
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())
	client := decode[models.Client](e.t, rec)

	rec = e.do(http.MethodPost, "/api/projects", e.adminToken, map[string]any{
		"client_id":   client.ID,
		"title":       title,
		"description": "Marketing site",
		"start_date":  "2026-01-05T00:00:00Z",
		"deadline":    "2026-03-01T00:00:00Z",
		"total_price": 1500,
		"milestones":  []map[string]any{{"title": "Wireframes"}},
	})
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.Project](e.t, rec)
}

func TestAuth_RegisterLoginMe(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "new@example.com", "password": "secret1", "name": "New"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	registered := decode[map[string]any](t, rec)
	token, _ := registered["access_token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "bearer", registered["token_type"])

	rec = env.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[map[string]any](t, rec)
	assert.Equal(t, "new@example.com", me["email"])
	assert.Equal(t, models.RoleClient, me["role"])
	assert.NotContains(t, rec.Body.String(), "hashed_password")

	rec = env.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "new@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Failures(t *testing.T) {
	env := newTestEnv(t, nil)

	wrongPassword := env.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "client@example.com", "password": "nope"})
	unknownEmail := env.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ghost@example.com", "password": "password1"})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	rec := env.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "client@example.com", "password": "secret1", "name": "Dup"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "boss@example.com", "password": "secret1", "name": "Boss", "role": "admin"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "not-an-email", "password": "secret1", "name": "X"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email", decode[map[string]any](t, rec)["field"])

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/auth/me", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/auth/me", "garbage", nil).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{not json"))
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_DeletedUserTokenIsRejected(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.db.UserRepo().GetDB().Delete(&models.User{}, "id = ?", env.client.ID).Error)

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/auth/me", env.clientToken, nil).Code)
}

func TestAuth_ChangePassword(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodPost, "/api/auth/change-password", env.clientToken, map[string]any{"old_password": "wrong", "new_password": "secret2"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/api/auth/change-password", env.clientToken, map[string]any{"old_password": "password1", "new_password": "secret2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "client@example.com", "password": "secret2"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminGates(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject("Gated")

	adminOnly := []struct {
		method, path string
		body         any
	}{
		{http.MethodPost, "/api/clients", map[string]any{"name": "X", "email": "x@example.com"}},
		{http.MethodGet, "/api/clients", nil},
		{http.MethodPost, "/api/projects", map[string]any{"client_id": "c", "title": "T"}},
		{http.MethodGet, "/api/projects", nil},
		{http.MethodGet, "/api/projects/" + project.ID, nil},
		{http.MethodPut, "/api/projects/" + project.ID, map[string]any{"progress": 90}},
		{http.MethodDelete, "/api/projects/" + project.ID, nil},
		{http.MethodGet, "/api/bookings", nil},
		{http.MethodGet, "/api/dashboard/stats", nil},
		{http.MethodPost, "/api/upload", nil},
		{http.MethodPost, "/api/srs", nil},
	}
	for _, tt := range adminOnly {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, http.StatusForbidden, env.do(tt.method, tt.path, env.clientToken, tt.body).Code)
			assert.Equal(t, http.StatusUnauthorized, env.do(tt.method, tt.path, "", tt.body).Code)
		})
	}

	// the project survived every refused mutation
	rec := env.do(http.MethodGet, "/api/projects/"+project.ID, env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[models.Project](t, rec).Progress)
}

func TestProjects_Lifecycle(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject("Storefront")

	assert.NotEmpty(t, project.ShareLink)
	assert.Equal(t, models.StatusNotStarted, project.Status)
	require.Len(t, project.Milestones, 1)
	assert.NotEmpty(t, project.Milestones[0].ID)

	rec := env.do(http.MethodPut, "/api/projects/"+project.ID, env.adminToken, map[string]any{
		"progress":   40,
		"status":     models.StatusDevelopment,
		"share_link": "attacker-chosen",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Project](t, rec)
	assert.Equal(t, 40, updated.Progress)
	assert.Equal(t, models.StatusDevelopment, updated.Status)
	assert.Equal(t, project.ShareLink, updated.ShareLink)
	assert.Equal(t, "Storefront", updated.Title)

	rec = env.do(http.MethodGet, "/api/projects/share/"+project.ShareLink, "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "share_link")
	shared := decode[map[string]any](t, rec)
	assert.Equal(t, project.ID, shared["project"].(map[string]any)["id"])
	assert.NotNil(t, shared["client"])

	rec = env.do(http.MethodDelete, "/api/projects/"+project.ID, env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/projects/"+project.ID, env.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/projects/share/"+project.ShareLink, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/api/projects/"+project.ID, env.adminToken, nil).Code)
}

func TestProjects_CreateRequiresDates(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.do(http.MethodPost, "/api/clients", env.adminToken, map[string]any{"name": "Acme", "email": "acme@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	client := decode[models.Client](t, rec)

	rec = env.do(http.MethodPost, "/api/projects", env.adminToken, map[string]any{"client_id": client.ID, "title": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "start_date")

	rec = env.do(http.MethodPost, "/api/projects", env.adminToken, map[string]any{
		"client_id":  client.ID,
		"title":      "x",
		"start_date": "2026-01-05T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "deadline")

	rec = env.do(http.MethodGet, "/api/projects", env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.Project](t, rec))
}

func TestProjects_ClearSheetLink(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject("Sheets")

	rec := env.do(http.MethodPut, "/api/projects/"+project.ID, env.adminToken, map[string]any{"google_sheet_link": "https://sheets.example/1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Project](t, rec)
	require.NotNil(t, updated.GoogleSheetLink)
	assert.Equal(t, "https://sheets.example/1", *updated.GoogleSheetLink)

	rec = env.do(http.MethodPut, "/api/projects/"+project.ID, env.adminToken, map[string]any{"progress": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, decode[models.Project](t, rec).GoogleSheetLink)

	rec = env.do(http.MethodPut, "/api/projects/"+project.ID, env.adminToken, map[string]any{"google_sheet_link": nil})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated = decode[models.Project](t, rec)
	assert.Nil(t, updated.GoogleSheetLink)
	assert.Equal(t, 10, updated.Progress)
}

func TestProjects_PublicViews(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject("Showcase")

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/projects/share/does-not-exist", "", nil).Code)

	rec := env.do(http.MethodGet, "/api/projects/portfolio", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]any](t, rec))

	env.do(http.MethodPut, "/api/projects/"+project.ID, env.adminToken, map[string]any{"is_portfolio": true})
	rec = env.do(http.MethodGet, "/api/projects/portfolio", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	portfolio := decode[[]map[string]any](t, rec)
	require.Len(t, portfolio, 1)
	assert.NotContains(t, rec.Body.String(), project.ShareLink)
}

func TestClients_CRUD(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodPost, "/api/clients", env.adminToken, map[string]any{"name": "Globex", "email": "g@example.com", "company": "Globex Corp"})
	require.Equal(t, http.StatusCreated, rec.Code)
	client := decode[models.Client](t, rec)

	rec = env.do(http.MethodPut, "/api/clients/"+client.ID, env.adminToken, map[string]any{"phone": "+15550100"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Client](t, rec)
	assert.Equal(t, "Globex", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+15550100", *updated.Phone)
	require.NotNil(t, updated.Company)

	rec = env.do(http.MethodPut, "/api/clients/"+client.ID, env.adminToken, map[string]any{"company": nil})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated = decode[models.Client](t, rec)
	assert.Nil(t, updated.Company)
	require.NotNil(t, updated.Phone)

	rec = env.do(http.MethodPut, "/api/clients/"+client.ID, env.adminToken, map[string]any{"email": "bad"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/clients", env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Client](t, rec), 1)

	assert.Equal(t, http.StatusOK, env.do(http.MethodDelete, "/api/clients/"+client.ID, env.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/clients/"+client.ID, env.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodPut, "/api/clients/missing", env.adminToken, map[string]any{"name": "x"}).Code)
}

func TestMessages(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject("Chatty")

	rec := env.do(http.MethodPost, "/api/messages", env.clientToken, map[string]any{"project_id": project.ID, "message": "Looks great"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	msg := decode[models.Message](t, rec)
	assert.Equal(t, env.client.Name, msg.SenderName)
	assert.Equal(t, models.RoleClient, msg.SenderRole)

	rec = env.do(http.MethodPost, "/api/messages", env.clientToken, map[string]any{"project_id": "missing", "message": "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodPost, "/api/messages", env.clientToken, map[string]any{"project_id": project.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/messages/"+project.ID, "", nil).Code)
	rec = env.do(http.MethodGet, "/api/messages/"+project.ID, env.clientToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Message](t, rec), 1)
}

func TestBookings(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodPost, "/api/bookings", "", map[string]any{
		"name":         "Lee",
		"email":        "lee@example.com",
		"project_idea": "Bakery site",
		"status":       "approved",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	booking := decode[models.Booking](t, rec)
	assert.Equal(t, models.BookingStatusPending, booking.Status)

	rec = env.do(http.MethodPost, "/api/bookings", "", map[string]any{"name": "Lee", "email": "nope", "project_idea": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPut, "/api/bookings/"+booking.ID+"/status", env.adminToken, nil).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodPut, "/api/bookings/"+booking.ID+"/status?status=contacted", env.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodPut, "/api/bookings/missing/status?status=contacted", env.adminToken, nil).Code)

	rec = env.do(http.MethodGet, "/api/bookings", env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	bookings := decode[[]models.Booking](t, rec)
	require.Len(t, bookings, 1)
	assert.Equal(t, "contacted", bookings[0].Status)
}

func TestBookings_RateLimited(t *testing.T) {
	env := newTestEnv(t, map[string]string{"BOOKING_RATE_LIMIT": "2-M"})
	body := map[string]any{"name": "Lee", "email": "lee@example.com", "project_idea": "Bakery site"}

	assert.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/bookings", "", body).Code)
	assert.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/bookings", "", body).Code)
	rec := env.do(http.MethodPost, "/api/bookings", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRouter_InvalidRateLimit(t *testing.T) {
	_, _, err := newRouter(dbtest.New(t), WithConfig(map[string]string{"BOOKING_RATE_LIMIT": "often"}))
	assert.Error(t, err)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t, nil)
	env.createProject("Paid")

	rec := env.do(http.MethodGet, "/api/dashboard/stats", env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[map[string]float64](t, rec)
	assert.Equal(t, float64(1), stats["total_clients"])
	assert.Equal(t, float64(1), stats["total_projects"])
	assert.Equal(t, float64(1500), stats["total_revenue"])
	assert.Equal(t, float64(1500), stats["pending_payments"])
}

type memorySink struct {
	keys []string
}

func (m *memorySink) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	m.keys = append(m.keys, key)
	return "https://blobs.example.com/" + key, nil
}

func multipartRequest(t *testing.T, path, token string, fields map[string]string, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploads_WithoutBlobSink(t *testing.T) {
	env := newTestEnv(t, nil)
	project := env.createProject("NoSink")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, multipartRequest(t, "/api/upload", env.adminToken, map[string]string{"project_id": project.ID}, "a.pdf", "data"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "blob storage not configured")
}

func TestUploads_FilesAndSRS(t *testing.T) {
	sink := &memorySink{}
	env := newTestEnv(t, nil, WithBlobSink(sink))
	project := env.createProject("Files")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, multipartRequest(t, "/api/upload", env.adminToken, map[string]string{
		"project_id":  project.ID,
		"category":    "design",
		"description": "Homepage mockup",
	}, "mock.png", "png"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	file := decode[models.FileUpload](t, rec)
	assert.Equal(t, "design", file.Category)
	require.NotNil(t, file.Description)
	assert.Equal(t, env.admin.Name, file.UploadedBy)

	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, multipartRequest(t, "/api/srs", env.adminToken, map[string]string{
		"project_id": project.ID,
		"title":      "Requirements",
		"version":    "1.0",
	}, "srs.pdf", "pdf"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	doc := decode[models.SRSDocument](t, rec)
	assert.Equal(t, env.admin.Name, doc.UploadedBy)
	assert.Equal(t, models.SRSStatusPending, doc.Status)

	require.Len(t, sink.keys, 2)
	assert.Contains(t, sink.keys[1], project.ID+"/srs/")

	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, multipartRequest(t, "/api/upload", env.adminToken, map[string]string{"project_id": project.ID}, "", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/files/"+project.ID, env.clientToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.FileUpload](t, rec), 1)

	assert.Equal(t, http.StatusOK, env.do(http.MethodPut, "/api/srs/"+doc.ID+"/status?status=approved", env.adminToken, nil).Code)
	rec = env.do(http.MethodGet, "/api/srs/"+project.ID, env.clientToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	docs := decode[[]models.SRSDocument](t, rec)
	require.Len(t, docs, 1)
	assert.Equal(t, "approved", docs[0].Status)

	assert.Equal(t, http.StatusOK, env.do(http.MethodDelete, "/api/files/"+file.ID, env.adminToken, nil).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodDelete, "/api/srs/"+doc.ID, env.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/api/srs/"+doc.ID, env.adminToken, nil).Code)
}

func TestOpsRoutes(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, rec)["status"])
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = env.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "projectveo_http_request_duration_seconds")
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, map[string]string{"CORS_ORIGINS": "https://app.example.com"})

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	allowed := preflight("https://app.example.com")
	assert.Less(t, allowed.Code, 300)
	assert.Equal(t, "https://app.example.com", allowed.Header().Get("Access-Control-Allow-Origin"))

	assert.Equal(t, http.StatusForbidden, preflight("https://evil.example.com").Code)
}
