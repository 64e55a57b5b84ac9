package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	"github.com/BruksfildServices01/loja-web/internal/auth"
	"github.com/BruksfildServices01/loja-web/internal/config"
	"github.com/BruksfildServices01/loja-web/internal/flash"
	"github.com/BruksfildServices01/loja-web/internal/handlers"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	infraRepo "github.com/BruksfildServices01/loja-web/internal/infra/repository"
	"github.com/BruksfildServices01/loja-web/internal/infra/storage"
	"github.com/BruksfildServices01/loja-web/internal/middleware"
	"github.com/BruksfildServices01/loja-web/internal/ratelimit"
	"github.com/BruksfildServices01/loja-web/internal/timezone"
	ucConta "github.com/BruksfildServices01/loja-web/internal/usecase/conta"
	ucProduto "github.com/BruksfildServices01/loja-web/internal/usecase/produto"
	ucUsuario "github.com/BruksfildServices01/loja-web/internal/usecase/usuario"
	"github.com/BruksfildServices01/loja-web/internal/validators"
	"github.com/BruksfildServices01/loja-web/internal/view"
)

// Infra são as dependências com ciclo de vida próprio, criadas no main.
type Infra struct {
	Images  storage.ImageStore
	Limiter ratelimit.Limiter
	Audit   audit.Sink
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) error {

	// Sem proxies confiáveis o ClientIP é o da conexão; o limite de login
	// depende disso.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return err
	}

	// ======================================================
	// TEMPLATES
	// ======================================================
	tz := timezone.NewFormatter(cfg.Timezone)
	if err := view.Load(r, infra.Images, tz); err != nil {
		return err
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	usuarioRepo := infraRepo.NewUsuarioGormRepository(db)
	produtoRepo := infraRepo.NewProdutoGormRepository(db)

	auditLogger := audit.New(db)
	emails := validators.NewEmailChecker(cfg.CheckEmailDomain)

	sessionCookie := &middleware.SessionCookie{
		Codec:  auth.NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL),
		Secure: cfg.IsProduction(),
	}
	flashStore := flash.NewStore(cfg.SessionSecret, cfg.IsProduction())

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucConta.NewLogin(usuarioRepo, infra.Audit)
	logoutUC := ucConta.NewLogout(usuarioRepo)
	cadastroUC := ucConta.NewCadastro(usuarioRepo, emails, cfg.BcryptCost, infra.Audit)
	alterarPerfilUC := ucConta.NewAlterarPerfil(usuarioRepo, emails)
	alterarSenhaUC := ucConta.NewAlterarSenha(usuarioRepo, cfg.BcryptCost)

	alterarUsuarioUC := ucUsuario.NewAlterar(usuarioRepo, emails, infra.Audit)
	excluirUsuarioUC := ucUsuario.NewExcluir(usuarioRepo, infra.Audit)

	inserirProdutoUC := ucProduto.NewInserir(produtoRepo, infra.Images, cfg.ImageMaxSize, infra.Audit)
	alterarProdutoUC := ucProduto.NewAlterar(produtoRepo, infra.Images, cfg.ImageMaxSize, infra.Audit)
	excluirProdutoUC := ucProduto.NewExcluir(produtoRepo, infra.Images, infra.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	rootHandler := handlers.NewRootHandler(
		produtoRepo,
		usuarioRepo,
		sessionCookie,
		loginUC,
		logoutUC,
		cadastroUC,
		alterarPerfilUC,
		alterarSenhaUC,
	)

	usuarioHandler := handlers.NewUsuarioHandler(
		usuarioRepo,
		alterarUsuarioUC,
		excluirUsuarioUC,
	)

	produtoHandler := handlers.NewProdutoHandler(
		produtoRepo,
		inserirProdutoUC,
		alterarProdutoUC,
		excluirProdutoUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, tz)

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// arquivos estáticos não passam pela sessão
	r.Static("/static", cfg.StaticDir)

	r.Use(flashStore.Middleware(), middleware.Session(sessionCookie, usuarioRepo))

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "not_found", "Página não encontrada.")
	})

	// ======================================================
	// PÚBLICO
	// ======================================================
	r.GET("/", rootHandler.Index)
	r.GET("/detalhes/:id", rootHandler.Detalhes)

	r.GET("/login", rootHandler.LoginPage)
	r.POST("/login", middleware.LoginLimiter(infra.Limiter), rootHandler.Login)
	r.GET("/logout", rootHandler.Logout)

	r.GET("/cadastro", rootHandler.CadastroPage)
	r.POST("/cadastro", rootHandler.Cadastro)

	// ======================================================
	// LOGADO
	// ======================================================
	logged := r.Group("", middleware.RequireLogin())
	{
		logged.GET("/restrito", rootHandler.Restrito)
		logged.POST("/alterar", rootHandler.AlterarPerfil)
		logged.POST("/altsenha", rootHandler.AlterarSenha)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("", middleware.RequireAdmin())
	{
		usuarios := admin.Group("/usuario")
		usuarios.GET("", usuarioHandler.Index)
		usuarios.GET("/excluir/:id", usuarioHandler.ExcluirPage)
		usuarios.POST("/excluir/:id", usuarioHandler.Excluir)
		usuarios.GET("/alterar/:id", usuarioHandler.AlterarPage)
		usuarios.POST("/alterar/:id", usuarioHandler.Alterar)

		produtos := admin.Group("/produto")
		produtos.GET("", produtoHandler.Index)
		produtos.GET("/inserir", produtoHandler.InserirPage)
		produtos.POST("/inserir", produtoHandler.Inserir)
		produtos.GET("/excluir/:id", produtoHandler.ExcluirPage)
		produtos.POST("/excluir/:id", produtoHandler.Excluir)
		produtos.GET("/alterar/:id", produtoHandler.AlterarPage)
		produtos.POST("/alterar/:id", produtoHandler.Alterar)

		admin.GET("/auditoria", auditLogsHandler.List)
	}

	return nil
}
