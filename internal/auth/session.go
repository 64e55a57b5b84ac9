package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName é o cookie que carrega a sessão.
const CookieName = "auth_token"

var ErrInvalidSession = errors.New("invalid_session")

// SessionCodec assina o token opaco num JWT para que cookies adulterados
// sejam descartados antes de qualquer consulta ao banco. A identidade
// continua sendo o token gravado no usuário.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	return &SessionCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *SessionCodec) TTL() time.Duration {
	return s.ttl
}

func (s *SessionCodec) Encode(token string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        token,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Decode devolve o token opaco de um cookie válido e não expirado.
func (s *SessionCodec) Decode(value string) (string, error) {
	if value == "" {
		return "", ErrInvalidSession
	}

	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid || claims.ID == "" {
		return "", ErrInvalidSession
	}
	return claims.ID, nil
}
