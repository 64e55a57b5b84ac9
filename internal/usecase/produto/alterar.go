package produto

import (
	"context"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/produto"
	"github.com/BruksfildServices01/loja-web/internal/infra/storage"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

type Alterar struct {
	repo    domain.Repository
	images  storage.ImageStore
	maxSide int
	audit   audit.Sink
}

func NewAlterar(
	repo domain.Repository,
	images storage.ImageStore,
	maxSide int,
	audit audit.Sink,
) *Alterar {
	return &Alterar{
		repo:    repo,
		images:  images,
		maxSide: maxSide,
		audit:   audit,
	}
}

// Execute atualiza os campos e troca a imagem só quando veio arquivo novo.
func (uc *Alterar) Execute(ctx context.Context, actor *models.Usuario, id uint, in Input) error {
	jpeg, err := normalize(in, uc.maxSide)
	if err != nil {
		return err
	}

	if err := uc.repo.Update(ctx, in.model(id)); err != nil {
		return err
	}

	if jpeg != nil {
		if err := uc.images.Save(ctx, id, jpeg); err != nil {
			return err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &actor.ID,
		Action:    audit.ActionProdutoAlterar,
		Entity:    audit.EntityProduto,
		EntityID:  &id,
		Metadata:  map[string]any{"nome": in.Nome, "preco": in.Preco, "imagem": jpeg != nil},
	})

	return nil
}
