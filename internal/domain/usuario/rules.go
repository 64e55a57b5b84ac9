package usuario

import (
	"strings"

	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

// DefaultAdminID é o administrador criado na primeira inicialização.
const DefaultAdminID uint = 1

// Dados fixos dos registros semeados.
const (
	DefaultAdminNome  = "Administrador do Sistema"
	DefaultAdminEmail = "admin@email.com"
	DefaultUserNome   = "Usuário Padrão"
	DefaultUserEmail  = "usuario@email.com"
)

// ===============================
// Validations
// ===============================

// CanDelete bloqueia a exclusão do admin padrão e do próprio usuário logado.
func CanDelete(targetID uint, current *models.Usuario) error {
	if targetID == DefaultAdminID {
		return httperr.ErrBusiness(httperr.CodeDefaultAdminProtected)
	}
	if current != nil && current.ID == targetID {
		return httperr.ErrBusiness(httperr.CodeSelfDelete)
	}
	return nil
}

// CanModify bloqueia alterações administrativas no admin padrão.
func CanModify(targetID uint) error {
	if targetID == DefaultAdminID {
		return httperr.ErrBusiness(httperr.CodeDefaultAdminProtected)
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
