package conta

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	"github.com/BruksfildServices01/loja-web/internal/auth"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/models"
	"github.com/BruksfildServices01/loja-web/internal/validators"
)

type CadastroInput struct {
	Nome  string
	Email string
	Senha string
}

// Cadastro cria contas comuns pela página pública; nunca administradores.
type Cadastro struct {
	repo       domain.Repository
	emails     *validators.EmailChecker
	bcryptCost int
	audit      audit.Sink
}

func NewCadastro(
	repo domain.Repository,
	emails *validators.EmailChecker,
	bcryptCost int,
	audit audit.Sink,
) *Cadastro {
	return &Cadastro{
		repo:       repo,
		emails:     emails,
		bcryptCost: bcryptCost,
		audit:      audit,
	}
}

func (uc *Cadastro) Execute(ctx context.Context, in CadastroInput) (*models.Usuario, error) {
	email := domain.NormalizeEmail(in.Email)
	if !uc.emails.Valid(ctx, email) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidEmail)
	}

	hash, err := auth.HashPassword(in.Senha, uc.bcryptCost)
	if err != nil {
		return nil, err
	}

	u, err := uc.repo.Insert(ctx, &models.Usuario{
		Nome:  strings.TrimSpace(in.Nome),
		Email: email,
		Senha: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &u.ID,
		Action:    audit.ActionCadastro,
		Entity:    audit.EntityUsuario,
		EntityID:  &u.ID,
	})

	return u, nil
}
