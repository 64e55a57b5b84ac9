package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/loja-web/internal/flash"
	"github.com/BruksfildServices01/loja-web/internal/middleware"
)

// Page renderiza um template com o usuário logado e as mensagens flash
// pendentes, que são consumidas aqui.
func Page(c *gin.Context, name string, data gin.H) {
	PageStatus(c, http.StatusOK, name, data)
}

func PageStatus(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Usuario"]; !ok {
		if u, ok := middleware.CurrentUsuario(c); ok {
			data["Usuario"] = u
		}
	}
	data["Flashes"] = flash.Consume(c)

	c.HTML(status, name, data)
}

// Redirect sempre com 302 para que o navegador repita como GET.
func Redirect(c *gin.Context, url string) {
	c.Redirect(http.StatusFound, url)
}

func RedirectWithFlash(c *gin.Context, url, msg string) {
	flash.Add(c, msg)
	Redirect(c, url)
}
