package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/loja-web/internal/domain/produto"
	"github.com/BruksfildServices01/loja-web/internal/dto"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/httpresp"
	"github.com/BruksfildServices01/loja-web/internal/models"
	ucProduto "github.com/BruksfildServices01/loja-web/internal/usecase/produto"
)

const fieldImagem = "arquivoImagem"

// ProdutoHandler é a gestão de produtos do administrador.
type ProdutoHandler struct {
	repo    produto.Repository
	inserir *ucProduto.Inserir
	alterar *ucProduto.Alterar
	excluir *ucProduto.Excluir
}

func NewProdutoHandler(
	repo produto.Repository,
	inserir *ucProduto.Inserir,
	alterar *ucProduto.Alterar,
	excluir *ucProduto.Excluir,
) *ProdutoHandler {
	return &ProdutoHandler{
		repo:    repo,
		inserir: inserir,
		alterar: alterar,
		excluir: excluir,
	}
}

func (h *ProdutoHandler) Index(c *gin.Context) {
	produtos, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, "produto/index.html", gin.H{
		"Titulo":   "Produtos",
		"Produtos": produtos,
	})
}

// --------------------------------------------------
// Inserir
// --------------------------------------------------

func (h *ProdutoHandler) InserirPage(c *gin.Context) {
	httpresp.Page(c, "produto/inserir.html", gin.H{
		"Titulo":  "Novo produto",
		"Produto": &models.Produto{},
	})
}

func (h *ProdutoHandler) Inserir(c *gin.Context) {
	in, file, ok := bindProduto(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	_, err := h.inserir.Execute(c.Request.Context(), currentUsuario(c), in)
	if httperr.IsBusiness(err, httperr.CodeInvalidImage) {
		httpresp.RedirectWithFlash(c, "/produto/inserir", msgImagemInvalida)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.RedirectWithFlash(c, "/produto", msgProdutoInserido)
}

// --------------------------------------------------
// Excluir
// --------------------------------------------------

func (h *ProdutoHandler) ExcluirPage(c *gin.Context) {
	h.renderProduto(c, "produto/excluir.html", "Excluir produto")
}

func (h *ProdutoHandler) Excluir(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.excluir.Execute(c.Request.Context(), currentUsuario(c), id); err != nil {
		fail(c, err)
		return
	}

	httpresp.RedirectWithFlash(c, "/produto", msgProdutoExcluido)
}

// --------------------------------------------------
// Alterar
// --------------------------------------------------

func (h *ProdutoHandler) AlterarPage(c *gin.Context) {
	h.renderProduto(c, "produto/alterar.html", "Alterar produto")
}

func (h *ProdutoHandler) Alterar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	in, file, ok := bindProduto(c)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	err := h.alterar.Execute(c.Request.Context(), currentUsuario(c), id, in)
	if httperr.IsBusiness(err, httperr.CodeInvalidImage) {
		httpresp.RedirectWithFlash(c, c.Request.URL.Path, msgImagemInvalida)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.RedirectWithFlash(c, "/produto", msgProdutoAlterado)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (h *ProdutoHandler) renderProduto(c *gin.Context, page, titulo string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, page, gin.H{
		"Titulo":  titulo,
		"Produto": p,
	})
}

// bindProduto lê os campos e, se houver, o arquivo enviado. O chamador
// fecha o arquivo devolvido.
func bindProduto(c *gin.Context) (ucProduto.Input, multipart.File, bool) {
	var form dto.ProdutoForm
	if err := c.ShouldBind(&form); err != nil {
		invalidForm(c, err)
		return ucProduto.Input{}, nil, false
	}

	in := ucProduto.Input{
		Nome:      form.Nome,
		Preco:     *form.Preco,
		Descricao: form.Descricao,
	}

	file, err := openUpload(c)
	if err != nil {
		invalidForm(c, err)
		return ucProduto.Input{}, nil, false
	}
	if file != nil {
		in.Imagem = file
	}
	return in, file, true
}

// openUpload devolve nil quando nenhum arquivo foi escolhido: o navegador
// manda a parte com nome vazio.
func openUpload(c *gin.Context) (multipart.File, error) {
	fh, err := c.FormFile(fieldImagem)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Filename == "" || fh.Size == 0 {
		return nil, nil
	}
	return fh.Open()
}
