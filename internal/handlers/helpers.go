package handlers

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/loja-web/internal/domain/produto"
	"github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/middleware"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

// pathID lê o :id da rota. Qualquer coisa que não seja inteiro positivo
// vira 404, igual a um id inexistente.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	httperr.NotFound(c, "not_found", "Página não encontrada.")
}

// fail responde erros que não são regra de negócio.
func fail(c *gin.Context, err error) {
	if errors.Is(err, usuario.ErrNotFound) || errors.Is(err, produto.ErrNotFound) {
		notFound(c)
		return
	}

	_ = c.Error(err)
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	httperr.Internal(c, "internal_error", "Ocorreu um erro inesperado. Tente novamente.")
}

func invalidForm(c *gin.Context, err error) {
	_ = c.Error(err)
	httperr.Unprocessable(c, "invalid_form", "Dados do formulário inválidos.")
}

// currentUsuario só é chamado atrás de RequireLogin/RequireAdmin.
func currentUsuario(c *gin.Context) *models.Usuario {
	u, _ := middleware.CurrentUsuario(c)
	return u
}

// safeReturnURL aceita apenas caminhos locais para não virar open redirect.
// Navegadores descartam tab e quebras de linha da URL, então "/\t/host"
// viraria "//host": qualquer caractere de controle ou barra invertida é recusado.
func safeReturnURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	for i := 0; i < len(raw); i++ {
		if b := raw[i]; b < 0x20 || b == 0x7f || b == '\\' {
			return "/"
		}
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return raw
}
