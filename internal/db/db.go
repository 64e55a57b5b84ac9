package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/loja-web/internal/config"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

// NewDB abre a conexão e encerra o processo em caso de falha.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect database")
	}
	return db
}

// Open conecta no driver informado ("postgres" ou "sqlite"), ajusta o pool
// e migra a tabela de auditoria. As tabelas de domínio ficam a cargo dos
// repositórios (CreateTable).
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if driver == "sqlite" {
		// sqlite aceita um único escritor; com ":memory:" cada conexão
		// nova seria um banco vazio.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		return nil, fmt.Errorf("migrate audit_logs: %w", err)
	}

	return db, nil
}
