package main

import (
	"database/sql"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mailstepcz/proof"
)

type config struct {
	LogLevel string `env:"PROVE_LOG_LEVEL" envDefault:"info"`
	LogDev   bool   `env:"PROVE_LOG_DEV" envDefault:"false"`
	DBDriver string `env:"PROVE_DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"PROVE_DB_DSN" envDefault:"proof.db"`
	// MaxPasses of 0 means no limit.
	MaxPasses int `env:"PROVE_MAX_PASSES" envDefault:"0"`
}

func parseConfig() (*config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func newLogger(cfg *config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if cfg.LogDev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// openStore opens the configured database and creates the tables if needed.
func openStore(cmdCtx *cmdContext) (*proof.Store, func(), error) {
	dialect, err := proof.DialectForDriver(cmdCtx.cfg.DBDriver)
	if err != nil {
		return nil, nil, err
	}
	db, err := sql.Open(cmdCtx.cfg.DBDriver, cmdCtx.cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	store := proof.NewStore(db, dialect)
	if err := store.Migrate(cmdCtx.ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, func() { db.Close() }, nil
}
