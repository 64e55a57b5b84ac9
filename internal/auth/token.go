package auth

import (
	"crypto/rand"
	"encoding/hex"
)

const tokenBytes = 32

// GenerateToken gera o identificador opaco da sessão gravado no usuário.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
