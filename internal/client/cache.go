package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bancoideias/backend-go/internal/database/models"
)

// The idea cache is write-through with a full refetch: every successful
// mutation reloads the whole list. A failed mutation returns the error and
// leaves the cache untouched (stale but consistent).

// Refresh reloads the full idea list into the cache.
func (c *Client) Refresh(ctx context.Context) error {
	var ideas []models.Idea
	if err := c.do(ctx, http.MethodGet, "/ideias", nil, &ideas); err != nil {
		c.logger.Error("❌ [Client] Failed to fetch ideas", "error", err)
		return err
	}

	c.mu.Lock()
	c.ideas = ideas
	c.mu.Unlock()
	return nil
}

// Ideas returns a copy of the cached list.
func (c *Client) Ideas() []models.Idea {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Idea(nil), c.ideas...)
}

// AddIdea creates an idea, then refetches.
func (c *Client) AddIdea(ctx context.Context, idea models.Idea) (uint, error) {
	var out struct {
		ID uint `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/ideias", idea, &out); err != nil {
		c.logger.Error("❌ [Client] Failed to create idea", "error", err)
		return 0, err
	}
	return out.ID, c.Refresh(ctx)
}

// UpdateIdea replaces an idea, then refetches.
func (c *Client) UpdateIdea(ctx context.Context, id uint, idea models.Idea) error {
	path := fmt.Sprintf("/ideias/%d", id)
	if err := c.do(ctx, http.MethodPut, path, idea, nil); err != nil {
		c.logger.Error("❌ [Client] Failed to update idea", "error", err, "idea_id", id)
		return err
	}
	return c.Refresh(ctx)
}

// RemoveIdea deletes an idea, then refetches.
func (c *Client) RemoveIdea(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/ideias/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		c.logger.Error("❌ [Client] Failed to delete idea", "error", err, "idea_id", id)
		return err
	}
	return c.Refresh(ctx)
}

// GetIdea fetches a single idea straight from the API, bypassing the cache.
func (c *Client) GetIdea(ctx context.Context, id uint) (*models.Idea, error) {
	var idea models.Idea
	path := fmt.Sprintf("/ideias/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}
