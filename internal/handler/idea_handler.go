package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bancoideias/backend-go/internal/database/models"
	"github.com/bancoideias/backend-go/internal/database/service"
)

// IdeaHandler handles HTTP requests for ideas
type IdeaHandler struct {
	service service.IdeaService
	logger  *slog.Logger
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(service service.IdeaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{
		service: service,
		logger:  logger,
	}
}

// IdeaRequest carries the writable idea attributes. No field-level
// validation beyond what the service and database enforce.
type IdeaRequest struct {
	Titulo      string  `json:"titulo"`
	VideoURL    *string `json:"videoUrl"`
	MusicaURL   *string `json:"musicaUrl"`
	Categoria   string  `json:"categoria"`
	Descricao   string  `json:"descricao"`
	Status      string  `json:"status"`
	Favorito    bool    `json:"favorito"`
	Publicidade bool    `json:"publicidade"`
	Data        string  `json:"data"`
}

func (r *IdeaRequest) toModel() *models.Idea {
	return &models.Idea{
		Titulo:      r.Titulo,
		VideoURL:    r.VideoURL,
		MusicaURL:   r.MusicaURL,
		Categoria:   r.Categoria,
		Descricao:   r.Descricao,
		Status:      r.Status,
		Favorito:    r.Favorito,
		Publicidade: r.Publicidade,
		Data:        r.Data,
	}
}

// Create handles POST /ideias
func (h *IdeaHandler) Create(c *gin.Context) {
	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [Handler] Invalid idea payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	id, err := h.service.Create(req.toModel())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Ideia criada com sucesso!", "id": id})
}

// List handles GET /ideias
func (h *IdeaHandler) List(c *gin.Context) {
	ideas, err := h.service.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// GetByID handles GET /ideias/:id
func (h *IdeaHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	idea, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// Update handles PUT /ideias/:id
func (h *IdeaHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [Handler] Invalid idea payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	if err := h.service.Update(id, req.toModel()); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ideia atualizada com sucesso!"})
}

// Delete handles DELETE /ideias/:id
func (h *IdeaHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ideia excluída com sucesso!"})
}

func (h *IdeaHandler) parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ideia não encontrada"})
		return 0, false
	}
	return uint(id), true
}
