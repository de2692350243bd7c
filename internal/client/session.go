package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bancoideias/backend-go/internal/database/models"
)

// session is the locally persisted credential state, the device-storage
// counterpart of the mobile app: token plus the last known user record.
type session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

func (c *Client) loadSession() {
	if c.sessionPath == "" {
		return
	}

	data, err := os.ReadFile(c.sessionPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("⚠️ [Client] Could not read session file", "error", err)
		}
		return
	}

	var s session
	if err := json.Unmarshal(data, &s); err != nil {
		c.logger.Warn("⚠️ [Client] Corrupt session file, discarding", "error", err)
		_ = os.Remove(c.sessionPath)
		return
	}

	c.mu.Lock()
	c.token = s.Token
	c.user = s.User
	c.mu.Unlock()
}

func (c *Client) saveSession() error {
	if c.sessionPath == "" {
		return nil
	}

	c.mu.Lock()
	s := session{Token: c.token, User: c.user}
	c.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.sessionPath), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.sessionPath, data, 0o600)
}

func (c *Client) clearSession() error {
	if c.sessionPath == "" {
		return nil
	}
	if err := os.Remove(c.sessionPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
