package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bancoideias/backend-go/internal/database/repository"
	"github.com/bancoideias/backend-go/internal/database/service"
)

// respondError maps service and repository errors to HTTP responses in one
// place. Unclassified errors become a generic 500; the real cause is only
// logged server-side.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email já cadastrado"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
	case errors.Is(err, repository.ErrIdeaNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Ideia não encontrada"})
	default:
		logger.Error("❌ [Handler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no banco"})
	}
}
