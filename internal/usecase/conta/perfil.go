package conta

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/loja-web/internal/auth"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/models"
	"github.com/BruksfildServices01/loja-web/internal/validators"
)

// ======================================================
// DADOS PESSOAIS
// ======================================================

type AlterarPerfil struct {
	repo   domain.Repository
	emails *validators.EmailChecker
}

func NewAlterarPerfil(repo domain.Repository, emails *validators.EmailChecker) *AlterarPerfil {
	return &AlterarPerfil{repo: repo, emails: emails}
}

// Execute altera nome e e-mail do próprio usuário; o perfil (admin) fica
// como está.
func (uc *AlterarPerfil) Execute(ctx context.Context, current *models.Usuario, nome, email string) error {
	email = domain.NormalizeEmail(email)
	if !uc.emails.Valid(ctx, email) {
		return httperr.ErrBusiness(httperr.CodeInvalidEmail)
	}

	err := uc.repo.Update(ctx, &models.Usuario{
		ID:    current.ID,
		Nome:  strings.TrimSpace(nome),
		Email: email,
		Admin: current.Admin,
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		return httperr.ErrBusiness(httperr.CodeEmailTaken)
	}
	return err
}

// ======================================================
// SENHA
// ======================================================

type AlterarSenha struct {
	repo       domain.Repository
	bcryptCost int
}

func NewAlterarSenha(repo domain.Repository, bcryptCost int) *AlterarSenha {
	return &AlterarSenha{repo: repo, bcryptCost: bcryptCost}
}

func (uc *AlterarSenha) Execute(ctx context.Context, current *models.Usuario, atual, nova, confirmacao string) error {
	if !auth.VerifyPassword(current.Senha, atual) {
		return httperr.ErrBusiness(httperr.CodeWrongPassword)
	}
	if nova != confirmacao {
		return httperr.ErrBusiness(httperr.CodePasswordMismatch)
	}

	hash, err := auth.HashPassword(nova, uc.bcryptCost)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdatePasswordByID(ctx, current.ID, hash); err != nil {
		return err
	}

	current.Senha = hash
	return nil
}
