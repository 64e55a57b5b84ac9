package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	"github.com/BruksfildServices01/loja-web/internal/auth"
	"github.com/BruksfildServices01/loja-web/internal/config"
	dbpkg "github.com/BruksfildServices01/loja-web/internal/db"
	infraRepo "github.com/BruksfildServices01/loja-web/internal/infra/repository"
	"github.com/BruksfildServices01/loja-web/internal/infra/storage"
	"github.com/BruksfildServices01/loja-web/internal/logger"
	"github.com/BruksfildServices01/loja-web/internal/ratelimit"
	"github.com/BruksfildServices01/loja-web/internal/routes"
)

func main() {

	cfg := config.Load()
	logger.Setup(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if cfg.SessionSecret == "changeme" {
			log.Warn().Msg("SESSION_SECRET is using the default value")
		}
	}

	db := dbpkg.NewDB(cfg)

	ctx := context.Background()
	if err := prepareDatabase(ctx, db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare database")
	}

	images, err := storage.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure image storage")
	}

	limiter := ratelimit.New(cfg)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	r := gin.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := routes.RegisterRoutes(r, db, cfg, routes.Infra{
		Images:  images,
		Limiter: limiter,
		Audit:   auditDispatcher,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	stop, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	log.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// prepareDatabase cria as tabelas e os usuários padrão. O admin vem
// primeiro para ficar com o id 1 num banco novo.
func prepareDatabase(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	usuarios := infraRepo.NewUsuarioGormRepository(db)
	produtos := infraRepo.NewProdutoGormRepository(db)

	if err := usuarios.CreateTable(ctx); err != nil {
		return err
	}
	if err := produtos.CreateTable(ctx); err != nil {
		return err
	}

	adminHash, err := auth.HashPassword(cfg.DefaultAdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := usuarios.SeedDefaultAdmin(ctx, adminHash); err != nil {
		return err
	}

	userHash, err := auth.HashPassword(cfg.DefaultUserPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}
	return usuarios.SeedDefaultUser(ctx, userHash)
}
