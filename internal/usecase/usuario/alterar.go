package usuario

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/models"
	"github.com/BruksfildServices01/loja-web/internal/validators"
)

type AlterarInput struct {
	ID    uint
	Nome  string
	Email string
	Admin bool
}

// Alterar é a edição administrativa: nome, e-mail e perfil de outro usuário.
type Alterar struct {
	repo   domain.Repository
	emails *validators.EmailChecker
	audit  audit.Sink
}

func NewAlterar(
	repo domain.Repository,
	emails *validators.EmailChecker,
	audit audit.Sink,
) *Alterar {
	return &Alterar{
		repo:   repo,
		emails: emails,
		audit:  audit,
	}
}

func (uc *Alterar) Execute(ctx context.Context, actor *models.Usuario, in AlterarInput) error {
	if err := domain.CanModify(in.ID); err != nil {
		return err
	}

	email := domain.NormalizeEmail(in.Email)
	if !uc.emails.Valid(ctx, email) {
		return httperr.ErrBusiness(httperr.CodeInvalidEmail)
	}

	err := uc.repo.Update(ctx, &models.Usuario{
		ID:    in.ID,
		Nome:  strings.TrimSpace(in.Nome),
		Email: email,
		Admin: in.Admin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &actor.ID,
		Action:    audit.ActionUsuarioAlterar,
		Entity:    audit.EntityUsuario,
		EntityID:  &in.ID,
		Metadata:  map[string]any{"email": email, "admin": in.Admin},
	})

	return nil
}
