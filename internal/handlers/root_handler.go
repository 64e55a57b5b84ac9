package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/loja-web/internal/domain/produto"
	"github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/dto"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/httpresp"
	"github.com/BruksfildServices01/loja-web/internal/middleware"
	ucConta "github.com/BruksfildServices01/loja-web/internal/usecase/conta"
)

// ======================================================
// HANDLER
// ======================================================

// RootHandler atende as páginas públicas e a área do próprio usuário.
type RootHandler struct {
	produtos produto.Repository
	usuarios usuario.Repository
	cookie   *middleware.SessionCookie

	login         *ucConta.Login
	logout        *ucConta.Logout
	cadastro      *ucConta.Cadastro
	alterarPerfil *ucConta.AlterarPerfil
	alterarSenha  *ucConta.AlterarSenha
}

func NewRootHandler(
	produtos produto.Repository,
	usuarios usuario.Repository,
	cookie *middleware.SessionCookie,
	login *ucConta.Login,
	logout *ucConta.Logout,
	cadastro *ucConta.Cadastro,
	alterarPerfil *ucConta.AlterarPerfil,
	alterarSenha *ucConta.AlterarSenha,
) *RootHandler {
	return &RootHandler{
		produtos:      produtos,
		usuarios:      usuarios,
		cookie:        cookie,
		login:         login,
		logout:        logout,
		cadastro:      cadastro,
		alterarPerfil: alterarPerfil,
		alterarSenha:  alterarSenha,
	}
}

// ======================================================
// CATÁLOGO
// ======================================================

func (h *RootHandler) Index(c *gin.Context) {
	produtos, err := h.produtos.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "root/index.html", gin.H{
		"Produtos": produtos,
	})
}

func (h *RootHandler) Detalhes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.produtos.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "root/detalhes.html", gin.H{
		"Titulo":  p.Nome,
		"Produto": p,
	})
}

// ======================================================
// LOGIN / LOGOUT
// ======================================================

func (h *RootHandler) LoginPage(c *gin.Context) {
	httpresp.Page(c, "root/login.html", gin.H{
		"Titulo":    "Entrar",
		"ReturnURL": c.Query("return_url"),
	})
}

func (h *RootHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		invalidForm(c, err)
		return
	}

	token, err := h.login.Execute(c.Request.Context(), form.Email, form.Senha)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			httpresp.RedirectWithFlash(c, "/login", msgLoginInvalido)
			return
		}
		fail(c, err)
		return
	}

	if err := h.cookie.Set(c, token); err != nil {
		fail(c, err)
		return
	}

	httpresp.RedirectWithFlash(c, safeReturnURL(c.Query("return_url")), msgLoginOK)
}

func (h *RootHandler) Logout(c *gin.Context) {
	u, ok := middleware.CurrentUsuario(c)
	if !ok {
		httpresp.Redirect(c, "/")
		return
	}

	if err := h.logout.Execute(c.Request.Context(), u); err != nil {
		fail(c, err)
		return
	}

	h.cookie.Clear(c)
	httpresp.RedirectWithFlash(c, "/", msgLogoutOK)
}

// ======================================================
// CADASTRO
// ======================================================

func (h *RootHandler) CadastroPage(c *gin.Context) {
	httpresp.Page(c, "root/cadastro.html", gin.H{
		"Titulo": "Cadastro",
	})
}

func (h *RootHandler) Cadastro(c *gin.Context) {
	var form dto.CadastroForm
	if err := c.ShouldBind(&form); err != nil {
		invalidForm(c, err)
		return
	}

	_, err := h.cadastro.Execute(c.Request.Context(), ucConta.CadastroInput{
		Nome:  form.Nome,
		Email: form.Email,
		Senha: form.Senha,
	})
	if msg, ok := emailErrorMessage(err); ok {
		httpresp.RedirectWithFlash(c, "/cadastro", msg)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.RedirectWithFlash(c, "/", msgCadastroOK)
}

// ======================================================
// ÁREA RESTRITA
// ======================================================

func (h *RootHandler) Restrito(c *gin.Context) {
	u, err := h.usuarios.GetByID(c.Request.Context(), currentUsuario(c).ID)
	if err != nil {
		fail(c, err)
		return
	}

	h.renderRestrito(c, gin.H{"Usuario": u})
}

func (h *RootHandler) AlterarPerfil(c *gin.Context) {
	var form dto.AlterarPerfilForm
	if err := c.ShouldBind(&form); err != nil {
		invalidForm(c, err)
		return
	}

	err := h.alterarPerfil.Execute(c.Request.Context(), currentUsuario(c), form.Nome, form.Email)
	if msg, ok := emailErrorMessage(err); ok {
		httpresp.RedirectWithFlash(c, "/restrito", msg)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.RedirectWithFlash(c, "/restrito", msgPerfilOK)
}

// AlterarSenha responde na própria página, sem redirect, como o formulário espera.
func (h *RootHandler) AlterarSenha(c *gin.Context) {
	var form dto.AlterarSenhaForm
	if err := c.ShouldBind(&form); err != nil {
		invalidForm(c, err)
		return
	}

	u := currentUsuario(c)
	err := h.alterarSenha.Execute(c.Request.Context(), u, form.SenhaAtual, form.NovaSenha, form.ConfSenha)

	switch {
	case httperr.IsBusiness(err, httperr.CodeWrongPassword):
		h.renderRestrito(c, gin.H{"Usuario": u, "ErroSenha": msgSenhaAtualErrada})
	case httperr.IsBusiness(err, httperr.CodePasswordMismatch):
		h.renderRestrito(c, gin.H{"Usuario": u, "ErroSenha": msgSenhasDiferentes})
	case err != nil:
		fail(c, err)
	default:
		h.renderRestrito(c, gin.H{"Usuario": u, "MensagemSenha": msgSenhaOK})
	}
}

func (h *RootHandler) renderRestrito(c *gin.Context, data gin.H) {
	data["Titulo"] = "Minha conta"
	httpresp.Page(c, "root/restrito.html", data)
}

func emailErrorMessage(err error) (string, bool) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return "", false
	}
	switch code {
	case httperr.CodeInvalidEmail:
		return msgEmailInvalido, true
	case httperr.CodeEmailTaken:
		return msgEmailEmUso, true
	}
	return "", false
}
