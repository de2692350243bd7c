// Package client is the API consumer side of the system: a thin REST
// client, a file-backed session, and the refetch-all idea cache the views
// read from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bancoideias/backend-go/internal/database/models"
)

// Client talks to the Banco de Ideias API and holds the cached idea list.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	sessionPath string
	logger      *slog.Logger

	mu    sync.Mutex
	token string
	user  *models.User
	ideas []models.Idea
}

// RegisterPayload mirrors the /auth/register body.
type RegisterPayload struct {
	Nome              string  `json:"nome"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	Nascimento        *string `json:"nascimento,omitempty"`
	Telefone          *string `json:"telefone,omitempty"`
	InstagramUsername *string `json:"instagram_username,omitempty"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// New builds a client and restores any session persisted at sessionPath.
// The restored token is not validated here; call RestoreSession for that.
func New(baseURL, sessionPath string, logger *slog.Logger) *Client {
	c := &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		sessionPath: sessionPath,
		logger:      logger,
	}
	c.loadSession()
	return c
}

// Token returns the current bearer token, empty when signed out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// User returns the cached user record, nil when signed out.
func (c *Client) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// RestoreSession revalidates a persisted token against /auth/me. A rejected
// token clears the session; a network failure keeps local state as-is.
func (c *Client) RestoreSession(ctx context.Context) error {
	if c.Token() == "" {
		return nil
	}

	user, status, err := c.fetchMe(ctx)
	if err != nil {
		c.logger.Warn("⚠️ [Client] Could not validate stored token, keeping local session", "error", err)
		return nil
	}
	if status != http.StatusOK {
		c.logger.Warn("⚠️ [Client] Stored token rejected, clearing session", "status", status)
		return c.SignOut()
	}

	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return c.saveSession()
}

// Register creates an account and returns the new user id.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (uint, error) {
	var out struct {
		ID uint `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", payload, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Login authenticates, stores the session, and returns the user.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = out.Token
	c.user = &out.User
	c.mu.Unlock()

	if err := c.saveSession(); err != nil {
		c.logger.Warn("⚠️ [Client] Failed to persist session", "error", err)
	}
	return &out.User, nil
}

// Me fetches the authenticated user's public projection.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignOut forgets the token and user and removes the session file.
func (c *Client) SignOut() error {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()
	return c.clearSession()
}

// Health pings the API.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// do issues a JSON request and decodes the response into out. Non-2xx
// responses become errors carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			if apiErr.Error != "" {
				return fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
			}
			if apiErr.Message != "" {
				return fmt.Errorf("%s (status %d)", apiErr.Message, resp.StatusCode)
			}
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// fetchMe is RestoreSession's raw variant: it reports the HTTP status so
// the caller can tell a rejected token from a transport failure.
func (c *Client) fetchMe(ctx context.Context) (*models.User, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, resp.StatusCode, err
	}
	return &user, resp.StatusCode, nil
}
