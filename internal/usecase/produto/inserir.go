package produto

import (
	"context"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/produto"
	"github.com/BruksfildServices01/loja-web/internal/infra/storage"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

type Inserir struct {
	repo    domain.Repository
	images  storage.ImageStore
	maxSide int
	audit   audit.Sink
}

func NewInserir(
	repo domain.Repository,
	images storage.ImageStore,
	maxSide int,
	audit audit.Sink,
) *Inserir {
	return &Inserir{
		repo:    repo,
		images:  images,
		maxSide: maxSide,
		audit:   audit,
	}
}

func (uc *Inserir) Execute(ctx context.Context, actor *models.Usuario, in Input) (*models.Produto, error) {
	jpeg, err := normalize(in, uc.maxSide)
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.Insert(ctx, in.model(0))
	if err != nil {
		return nil, err
	}

	// o nome do arquivo depende do id, então a imagem vem depois do insert
	if jpeg != nil {
		if err := uc.images.Save(ctx, p.ID, jpeg); err != nil {
			return p, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &actor.ID,
		Action:    audit.ActionProdutoInserir,
		Entity:    audit.EntityProduto,
		EntityID:  &p.ID,
		Metadata:  map[string]any{"nome": p.Nome, "preco": p.Preco, "imagem": jpeg != nil},
	})

	return p, nil
}
