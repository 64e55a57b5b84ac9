package view

import (
	"embed"
	"html/template"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/loja-web/internal/infra/storage"
	"github.com/BruksfildServices01/loja-web/internal/timezone"
)

//go:embed templates
var files embed.FS

var patterns = []string{
	"templates/*.html",
	"templates/*/*.html",
}

// Funcs são as funções disponíveis em todos os templates.
func Funcs(store storage.ImageStore, tz *timezone.Formatter) template.FuncMap {
	return template.FuncMap{
		"imagemProduto": store.URL,
		"dataHora":      tz.Format,
		"moeda":         Moeda,
	}
}

// Parse carrega os templates embutidos. Cada página se registra com
// {{define "pasta/arquivo.html"}}, que é o nome usado em c.HTML.
func Parse(store storage.ImageStore, tz *timezone.Formatter) (*template.Template, error) {
	return template.New("").Funcs(Funcs(store, tz)).ParseFS(files, patterns...)
}

func Load(r *gin.Engine, store storage.ImageStore, tz *timezone.Formatter) error {
	t, err := Parse(store, tz)
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(t)
	return nil
}

// Moeda formata reais inteiros: 1234 -> "R$ 1.234,00".
func Moeda(v int) string {
	neg := v < 0
	if neg {
		v = -v
	}

	digits := strconv.Itoa(v)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	s := "R$ " + b.String() + ",00"
	if neg {
		return "-" + s
	}
	return s
}
