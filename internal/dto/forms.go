package dto

// ======================================================
// CONTA
// ======================================================

type LoginForm struct {
	Email string `form:"email" binding:"required"`
	Senha string `form:"senha" binding:"required"`
}

type CadastroForm struct {
	Nome  string `form:"nome" binding:"required"`
	Email string `form:"email" binding:"required"`
	Senha string `form:"senha" binding:"required"`
}

type AlterarPerfilForm struct {
	Nome  string `form:"nome" binding:"required"`
	Email string `form:"email" binding:"required"`
}

type AlterarSenhaForm struct {
	SenhaAtual string `form:"senha_atual" binding:"required"`
	NovaSenha  string `form:"nova_senha" binding:"required"`
	ConfSenha  string `form:"conf_nova_senha" binding:"required"`
}

// ======================================================
// ADMIN
// ======================================================

// UsuarioForm: checkbox desmarcado não é enviado, por isso Admin não é
// obrigatório.
type UsuarioForm struct {
	Nome  string `form:"nome" binding:"required"`
	Email string `form:"email" binding:"required"`
	Admin bool   `form:"administrador"`
}

// ProdutoForm: o arquivo (arquivoImagem) é lido à parte com c.FormFile.
type ProdutoForm struct {
	Nome      string `form:"nome" binding:"required"`
	Preco     *int   `form:"preco" binding:"required,min=0"`
	Descricao string `form:"descricao" binding:"required"`
}
