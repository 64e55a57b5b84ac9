package usuario

import (
	"context"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

type Excluir struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewExcluir(repo domain.Repository, audit audit.Sink) *Excluir {
	return &Excluir{repo: repo, audit: audit}
}

// Execute recusa o admin padrão antes do próprio usuário: o admin padrão
// tentando se excluir recebe a mensagem de registro protegido.
func (uc *Excluir) Execute(ctx context.Context, actor *models.Usuario, id uint) error {
	if err := domain.CanDelete(id, actor); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &actor.ID,
		Action:    audit.ActionUsuarioExcluir,
		Entity:    audit.EntityUsuario,
		EntityID:  &id,
	})

	return nil
}
