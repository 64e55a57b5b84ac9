package handlers

// Mensagens flash exibidas ao usuário.
const (
	msgLoginOK            = "Login realizado com sucesso."
	msgLoginInvalido      = "Credenciais inválidas. Tente novamente."
	msgLogoutOK           = "Saída realizada com sucesso."
	msgCadastroOK         = "Usuário cadastrado com sucesso!"
	msgEmailInvalido      = "Informe um e-mail válido."
	msgEmailEmUso         = "Já existe um usuário cadastrado com este e-mail."
	msgPerfilOK           = "Dados alterados com sucesso."
	msgSenhaAtualErrada   = "Senha atual incorreta."
	msgSenhasDiferentes   = "As novas senhas não coincidem."
	msgSenhaOK            = "Senha atualizada com sucesso."
	msgAdminPadraoExcluir = "Não é possível excluir o administrador padrão do sistema."
	msgAutoExclusao       = "Não é possível excluir o próprio usuário que está logado."
	msgUsuarioExcluido    = "Usuário excluído com sucesso."
	msgAdminPadraoAlterar = "Não é possível alterar dados do administrador padrão."
	msgUsuarioAlterado    = "Usuário alterado com sucesso."
	msgProdutoInserido    = "Produto inserido com sucesso!"
	msgImagemInvalida     = "Imagem inválida."
	msgProdutoExcluido    = "Produto excluído com sucesso!"
	msgProdutoAlterado    = "Produto alterado com sucesso!"
)
