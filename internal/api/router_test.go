package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bancoideias/backend-go/internal/config"
	"github.com/bancoideias/backend-go/internal/database/models"
	"github.com/bancoideias/backend-go/internal/database/repository"
	"github.com/bancoideias/backend-go/internal/database/service"
	"github.com/bancoideias/backend-go/internal/handler"
	"github.com/bancoideias/backend-go/internal/middleware"
)

const testSecret = "test_secret"

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Idea{}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{JWTSecret: testSecret, TokenExpiration: 604800}

	authService := service.NewAuthService(repository.NewUserRepository(db), cfg, logger)
	ideaService := service.NewIdeaService(repository.NewIdeaRepository(db), logger)

	return SetupRouter(
		handler.NewAuthHandler(authService, logger),
		handler.NewIdeaHandler(ideaService, logger),
		middleware.NewAuthMiddleware(authService, logger),
		middleware.NewNoOpRateLimiter(logger),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerAna(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"nome": "Ana", "email": "ana@x.com", "password": "secret",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
}

func loginAna(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "ana@x.com", "password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	return decodeBody(t, w)["token"].(string)
}

func TestHealth(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRegister(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"nome": "Ana", "email": "ana@x.com", "password": "secret",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["id"])
}

func TestRegister_MissingFields(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"email": "ana@x.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := setupTestRouter(t)
	registerAna(t, r)

	w := doJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"nome": "Ana de novo", "email": "ana@x.com", "password": "outra",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	r := setupTestRouter(t)
	registerAna(t, r)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "ana@x.com", "password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	token := body["token"].(string)

	// Token embeds the identity used to log in
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(1), claims["id"])
	assert.Equal(t, "ana@x.com", claims["email"])

	// The user projection never carries the password hash
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ana@x.com", user["email"])
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash)
}

func TestLogin_Failures(t *testing.T) {
	r := setupTestRouter(t)
	registerAna(t, r)

	wrongPassword := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "ana@x.com", "password": "wrong",
	}, "")
	noSuchUser := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "ghost@x.com", "password": "whatever",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, noSuchUser.Code)
	// Same error shape either way
	assert.Equal(t, wrongPassword.Body.String(), noSuchUser.Body.String())

	missing := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "ana@x.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestMe(t *testing.T) {
	r := setupTestRouter(t)
	registerAna(t, r)
	token := loginAna(t, r)

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Ana", body["nome"])
	_, hasHash := body["password_hash"]
	assert.False(t, hasHash)
}

func TestMe_TokenErrors(t *testing.T) {
	r := setupTestRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "malformed", header: "Bearer"},
		{name: "bad token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func ideaPayload() map[string]interface{} {
	return map[string]interface{}{
		"titulo":      "Meme da semana",
		"videoUrl":    "https://youtu.be/abc",
		"musicaUrl":   nil,
		"categoria":   "Meme",
		"descricao":   "cortar aos 0:42",
		"status":      "Pendente",
		"favorito":    true,
		"publicidade": false,
		"data":        "2024-03-10 15:00:00",
	}
}

func TestIdeaCRUD(t *testing.T) {
	r := setupTestRouter(t)

	// Create
	w := doJSON(t, r, http.MethodPost, "/ideias", ideaPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	// Read back
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/ideias/%.0f", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "Meme da semana", got["titulo"])
	assert.Equal(t, "2024-03-10 15:00:00", got["data"])
	assert.Equal(t, true, got["favorito"])

	// List
	w = doJSON(t, r, http.MethodGet, "/ideias", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// Update (full replace)
	payload := ideaPayload()
	payload["titulo"] = "editado"
	payload["status"] = "Concluída"
	payload["favorito"] = false
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/ideias/%.0f", id), payload, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/ideias/%.0f", id), nil, "")
	got = decodeBody(t, w)
	assert.Equal(t, "editado", got["titulo"])
	assert.Equal(t, "Concluída", got["status"])
	assert.Equal(t, false, got["favorito"])

	// Delete twice: first 200, second 404
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/ideias/%.0f", id), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/ideias/%.0f", id), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIdea_DateNormalizationOnCreate(t *testing.T) {
	r := setupTestRouter(t)

	payload := ideaPayload()
	payload["data"] = "2024-03-10"
	w := doJSON(t, r, http.MethodPost, "/ideias", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/ideias/%.0f", id), nil, "")
	got := decodeBody(t, w)
	assert.Equal(t, "2024-03-10 00:00:00", got["data"])
}

func TestIdea_NotFound(t *testing.T) {
	r := setupTestRouter(t)

	assert.Equal(t, http.StatusNotFound,
		doJSON(t, r, http.MethodGet, "/ideias/999", nil, "").Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, r, http.MethodPut, "/ideias/999", ideaPayload(), "").Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, r, http.MethodDelete, "/ideias/999", nil, "").Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, r, http.MethodGet, "/ideias/abc", nil, "").Code)
}
