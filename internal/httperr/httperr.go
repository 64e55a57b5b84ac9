package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Template usado para todas as páginas de erro.
const Template = "erro.html"

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// Write renderiza a página de erro e interrompe a cadeia de handlers.
func Write(c *gin.Context, status int, code, message string) {
	c.Abort()
	c.HTML(status, Template, gin.H{
		"Titulo": http.StatusText(status),
		"Erro": HTTPError{
			Status:  status,
			Code:    code,
			Message: message,
		},
	})
}

func Unauthorized(c *gin.Context) {
	Write(c, http.StatusUnauthorized, "unauthorized", "Você precisa estar logado para acessar esta página.")
}

func Forbidden(c *gin.Context) {
	Write(c, http.StatusForbidden, "forbidden", "Você não tem permissão para acessar esta página.")
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
