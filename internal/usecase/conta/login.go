package conta

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	"github.com/BruksfildServices01/loja-web/internal/auth"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewLogin(repo domain.Repository, audit audit.Sink) *Login {
	return &Login{repo: repo, audit: audit}
}

// Execute confere a senha e grava um token novo no usuário. Um login
// posterior sobrescreve o token (a última sessão vence).
func (uc *Login) Execute(ctx context.Context, email, senha string) (string, error) {
	email = domain.NormalizeEmail(email)

	id, hash, err := uc.repo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return "", err
	}

	if !auth.VerifyPassword(hash, senha) {
		return "", httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return "", err
	}

	if err := uc.repo.UpdateTokenByEmail(ctx, token, email); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &id,
		EntityID:  &id,
		Action:    audit.ActionLogin,
		Entity:    audit.EntityUsuario,
		Metadata:  map[string]string{"email": email},
	})

	return token, nil
}

// ======================================================
// LOGOUT
// ======================================================

type Logout struct {
	repo domain.Repository
}

func NewLogout(repo domain.Repository) *Logout {
	return &Logout{repo: repo}
}

func (uc *Logout) Execute(ctx context.Context, u *models.Usuario) error {
	if u == nil {
		return nil
	}
	return uc.repo.UpdateTokenByEmail(ctx, "", u.Email)
}
