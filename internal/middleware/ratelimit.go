package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/ratelimit"
)

// LoginLimiter limita tentativas de login por IP. Se o backend falhar a
// requisição passa.
func LoginLimiter(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Msg("login rate limit unavailable")
		}
		if !ok {
			httperr.TooManyRequests(c, "too_many_login_attempts",
				"Muitas tentativas de login. Aguarde um pouco e tente novamente.")
			return
		}
		c.Next()
	}
}
