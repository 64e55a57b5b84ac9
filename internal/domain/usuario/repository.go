package usuario

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/loja-web/internal/models"
)

var (
	ErrNotFound   = errors.New("usuario_not_found")
	ErrEmailTaken = errors.New("usuario_email_taken")
)

type Repository interface {
	// -------- Schema / seed --------
	CreateTable(ctx context.Context) error
	SeedDefaultAdmin(ctx context.Context, passwordHash string) error
	SeedDefaultUser(ctx context.Context, passwordHash string) error

	// -------- Leitura --------
	GetAll(ctx context.Context) ([]models.Usuario, error)
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	GetByToken(ctx context.Context, token string) (*models.Usuario, error)
	GetCredentialsByEmail(ctx context.Context, email string) (id uint, passwordHash string, err error)

	// -------- Escrita --------
	Insert(ctx context.Context, u *models.Usuario) (*models.Usuario, error)
	Update(ctx context.Context, u *models.Usuario) error
	UpdateTokenByEmail(ctx context.Context, token, email string) error
	UpdatePasswordByID(ctx context.Context, id uint, passwordHash string) error
	Delete(ctx context.Context, id uint) error
}
