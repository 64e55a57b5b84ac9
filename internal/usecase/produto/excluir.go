package produto

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/produto"
	"github.com/BruksfildServices01/loja-web/internal/infra/storage"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

type Excluir struct {
	repo   domain.Repository
	images storage.ImageStore
	audit  audit.Sink
}

func NewExcluir(repo domain.Repository, images storage.ImageStore, audit audit.Sink) *Excluir {
	return &Excluir{repo: repo, images: images, audit: audit}
}

func (uc *Excluir) Execute(ctx context.Context, actor *models.Usuario, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	// registro já foi removido; imagem órfã só gera log
	if err := uc.images.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Uint("produto_id", id).Msg("failed to delete product image")
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &actor.ID,
		Action:    audit.ActionProdutoExcluir,
		Entity:    audit.EntityProduto,
		EntityID:  &id,
	})

	return nil
}
