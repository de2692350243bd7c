package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bancoideias/backend-go/internal/database/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Idea{}))
	return db
}

func strptr(s string) *string {
	return &s
}

func TestIdeaRepository_CreateAndFind(t *testing.T) {
	repo := NewIdeaRepository(setupTestDB(t))

	idea := &models.Idea{
		Titulo:    "Reels de sexta",
		VideoURL:  strptr("https://youtu.be/abc123"),
		Categoria: models.CategoriaMeme,
		Status:    models.StatusPendente,
		Favorito:  true,
		Data:      "2024-03-10 15:00:00",
	}

	require.NoError(t, repo.Create(idea))
	require.NotZero(t, idea.ID)

	found, err := repo.FindByID(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reels de sexta", found.Titulo)
	assert.Equal(t, models.CategoriaMeme, found.Categoria)
	assert.True(t, found.Favorito)
	assert.Equal(t, "2024-03-10 15:00:00", found.Data)
	require.NotNil(t, found.VideoURL)
	assert.Equal(t, "https://youtu.be/abc123", *found.VideoURL)
}

func TestIdeaRepository_FindByID_NotFound(t *testing.T) {
	repo := NewIdeaRepository(setupTestDB(t))

	_, err := repo.FindByID(42)
	assert.ErrorIs(t, err, ErrIdeaNotFound)
}

func TestIdeaRepository_FindAll(t *testing.T) {
	repo := NewIdeaRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.Idea{Titulo: "a", Data: "2024-01-01 00:00:00"}))
	require.NoError(t, repo.Create(&models.Idea{Titulo: "b", Data: "2024-01-02 00:00:00"}))

	ideas, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, ideas, 2)
}

func TestIdeaRepository_Update(t *testing.T) {
	repo := NewIdeaRepository(setupTestDB(t))

	idea := &models.Idea{
		Titulo:   "original",
		Status:   models.StatusPendente,
		Favorito: true,
		Data:     "2024-03-10 15:00:00",
	}
	require.NoError(t, repo.Create(idea))

	// Full replace: cleared fields must be written too.
	replacement := &models.Idea{
		ID:     idea.ID,
		Titulo: "editado",
		Status: models.StatusConcluida,
		Data:   "2024-04-01 08:30:00",
	}
	require.NoError(t, repo.Update(replacement))

	found, err := repo.FindByID(idea.ID)
	require.NoError(t, err)
	assert.Equal(t, "editado", found.Titulo)
	assert.Equal(t, models.StatusConcluida, found.Status)
	assert.False(t, found.Favorito)
	assert.Equal(t, "2024-04-01 08:30:00", found.Data)
}

func TestIdeaRepository_Update_NotFound(t *testing.T) {
	repo := NewIdeaRepository(setupTestDB(t))

	err := repo.Update(&models.Idea{ID: 99, Titulo: "ghost", Data: "2024-01-01 00:00:00"})
	assert.ErrorIs(t, err, ErrIdeaNotFound)
}

func TestIdeaRepository_Delete(t *testing.T) {
	repo := NewIdeaRepository(setupTestDB(t))

	idea := &models.Idea{Titulo: "apagar", Data: "2024-03-10 15:00:00"}
	require.NoError(t, repo.Create(idea))

	require.NoError(t, repo.Delete(idea.ID))

	_, err := repo.FindByID(idea.ID)
	assert.ErrorIs(t, err, ErrIdeaNotFound)

	// Second delete on the same id
	assert.ErrorIs(t, repo.Delete(idea.ID), ErrIdeaNotFound)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := &models.User{
		Nome:         "Ana",
		Email:        "ana@x.com",
		PasswordHash: "hash",
		Telefone:     strptr("11999990000"),
	}
	require.NoError(t, repo.Create(user))
	require.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail("ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "Ana", byEmail.Nome)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", byID.Email)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.FindByEmail("ghost@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByID(7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
