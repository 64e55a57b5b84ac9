package produto

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/loja-web/internal/models"
)

var ErrNotFound = errors.New("produto_not_found")

type Repository interface {
	CreateTable(ctx context.Context) error

	GetAll(ctx context.Context) ([]models.Produto, error)
	GetByID(ctx context.Context, id uint) (*models.Produto, error)

	// Insert devolve o registro com o id atribuído, usado no nome da imagem.
	Insert(ctx context.Context, p *models.Produto) (*models.Produto, error)
	Update(ctx context.Context, p *models.Produto) error
	Delete(ctx context.Context, id uint) error
}
