package flash

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

// CookieName é o cookie das mensagens de uso único.
const CookieName = "mensagem"

const contextKey = "flash.store"

type Store struct {
	store *sessions.CookieStore
}

func NewStore(secret string, secure bool) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: cs}
}

// Middleware disponibiliza o store no contexto para Add/Consume.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, s)
		c.Next()
	}
}

func (s *Store) session(c *gin.Context) *sessions.Session {
	// Get só falha com cookie inválido e nesse caso devolve sessão nova.
	sess, err := s.store.Get(c.Request, CookieName)
	if err != nil {
		log.Debug().Err(err).Msg("discarding invalid flash cookie")
	}
	return sess
}

// Add guarda uma mensagem para a próxima página renderizada.
func Add(c *gin.Context, msg string) {
	s, ok := fromContext(c)
	if !ok {
		return
	}
	sess := s.session(c)
	sess.AddFlash(msg)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Error().Err(err).Msg("failed to save flash message")
	}
}

// Consume devolve e apaga as mensagens pendentes.
func Consume(c *gin.Context) []string {
	s, ok := fromContext(c)
	if !ok {
		return nil
	}
	sess := s.session(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Error().Err(err).Msg("failed to clear flash messages")
	}

	msgs := make([]string, 0, len(raw))
	for _, m := range raw {
		if str, ok := m.(string); ok {
			msgs = append(msgs, str)
		}
	}
	return msgs
}

func fromContext(c *gin.Context) (*Store, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Store)
	return s, ok
}
