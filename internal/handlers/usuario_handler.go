package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/dto"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/httpresp"
	ucUsuario "github.com/BruksfildServices01/loja-web/internal/usecase/usuario"
)

// UsuarioHandler é a gestão de usuários do administrador.
type UsuarioHandler struct {
	repo    usuario.Repository
	alterar *ucUsuario.Alterar
	excluir *ucUsuario.Excluir
}

func NewUsuarioHandler(
	repo usuario.Repository,
	alterar *ucUsuario.Alterar,
	excluir *ucUsuario.Excluir,
) *UsuarioHandler {
	return &UsuarioHandler{
		repo:    repo,
		alterar: alterar,
		excluir: excluir,
	}
}

func (h *UsuarioHandler) Index(c *gin.Context) {
	usuarios, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "usuario/index.html", gin.H{
		"Titulo":   "Usuários",
		"Usuarios": usuarios,
	})
}

// --------------------------------------------------
// Excluir
// --------------------------------------------------

func (h *UsuarioHandler) ExcluirPage(c *gin.Context) {
	h.renderAlvo(c, "usuario/excluir.html", "Excluir usuário")
}

func (h *UsuarioHandler) Excluir(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.excluir.Execute(c.Request.Context(), currentUsuario(c), id)
	switch {
	case httperr.IsBusiness(err, httperr.CodeDefaultAdminProtected):
		httpresp.RedirectWithFlash(c, "/usuario", msgAdminPadraoExcluir)
	case httperr.IsBusiness(err, httperr.CodeSelfDelete):
		httpresp.RedirectWithFlash(c, "/usuario", msgAutoExclusao)
	case err != nil:
		fail(c, err)
	default:
		httpresp.RedirectWithFlash(c, "/usuario", msgUsuarioExcluido)
	}
}

// --------------------------------------------------
// Alterar
// --------------------------------------------------

func (h *UsuarioHandler) AlterarPage(c *gin.Context) {
	h.renderAlvo(c, "usuario/alterar.html", "Alterar usuário")
}

func (h *UsuarioHandler) Alterar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.UsuarioForm
	if err := c.ShouldBind(&form); err != nil {
		invalidForm(c, err)
		return
	}

	err := h.alterar.Execute(c.Request.Context(), currentUsuario(c), ucUsuario.AlterarInput{
		ID:    id,
		Nome:  form.Nome,
		Email: form.Email,
		Admin: form.Admin,
	})
	if httperr.IsBusiness(err, httperr.CodeDefaultAdminProtected) {
		httpresp.RedirectWithFlash(c, "/usuario", msgAdminPadraoAlterar)
		return
	}
	if msg, ok := emailErrorMessage(err); ok {
		httpresp.RedirectWithFlash(c, c.Request.URL.Path, msg)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.RedirectWithFlash(c, "/usuario", msgUsuarioAlterado)
}

func (h *UsuarioHandler) renderAlvo(c *gin.Context, page, titulo string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	alvo, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, page, gin.H{
		"Titulo":      titulo,
		"UsuarioAlvo": alvo,
	})
}
