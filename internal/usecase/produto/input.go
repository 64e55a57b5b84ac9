package produto

import (
	"io"
	"strings"

	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/imaging"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

type Input struct {
	Nome      string
	Preco     int
	Descricao string

	// Imagem é opcional; nil mantém a imagem atual.
	Imagem io.Reader
}

func (in Input) model(id uint) *models.Produto {
	return &models.Produto{
		ID:        id,
		Nome:      strings.TrimSpace(in.Nome),
		Preco:     in.Preco,
		Descricao: strings.TrimSpace(in.Descricao),
	}
}

// normalize roda antes de qualquer gravação para que um upload inválido
// não deixe registro sem imagem para trás.
func normalize(in Input, maxSide int) ([]byte, error) {
	if in.Imagem == nil {
		return nil, nil
	}
	jpeg, err := imaging.Normalize(in.Imagem, maxSide)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidImage)
	}
	return jpeg, nil
}
