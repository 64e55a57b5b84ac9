package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/loja-web/internal/auth"
	"github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

const (
	ContextUsuario   = "usuario"
	ContextRequestID = "requestID"
)

// SessionCookie grava e apaga o cookie de autenticação.
type SessionCookie struct {
	Codec  *auth.SessionCodec
	Secure bool
}

func (s *SessionCookie) Set(c *gin.Context, token string) error {
	value, err := s.Codec.Encode(token)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, value, int(s.Codec.TTL().Seconds()), "/", "", s.Secure, true)
	return nil
}

func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", s.Secure, true)
}

// Session resolve o usuário do cookie e renova a validade a cada
// requisição. Cookie ausente, inválido ou com token desconhecido segue
// anônimo; quem exige login são RequireLogin/RequireAdmin.
func Session(cookie *SessionCookie, repo usuario.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(auth.CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		token, err := cookie.Codec.Decode(raw)
		if err != nil {
			c.Next()
			return
		}

		u, err := repo.GetByToken(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, usuario.ErrNotFound) {
				log.Error().Err(err).Msg("session lookup failed")
			}
			c.Next()
			return
		}

		c.Set(ContextUsuario, u)
		if err := cookie.Set(c, token); err != nil {
			log.Error().Err(err).Msg("session refresh failed")
		}

		c.Next()
	}
}

func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUsuario(c); !ok {
			httperr.Unauthorized(c)
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUsuario(c)
		if !ok {
			httperr.Unauthorized(c)
			return
		}
		if !u.Admin {
			httperr.Forbidden(c)
			return
		}
		c.Next()
	}
}

func CurrentUsuario(c *gin.Context) (*models.Usuario, bool) {
	v, ok := c.Get(ContextUsuario)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.Usuario)
	return u, ok && u != nil
}
