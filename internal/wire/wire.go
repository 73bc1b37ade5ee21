// Package wire provides dependency injection for the CrewDeck CLI.
// It creates the singleton engine with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/example/crewdeck/internal/adapters/persistence"
	"github.com/example/crewdeck/internal/adapters/sqlite"
	"github.com/example/crewdeck/internal/app"
	"github.com/example/crewdeck/internal/config"
)

var (
	cfg    *config.Config
	logger *logrus.Logger
	kv     *sqlite.KVStore
	engine *app.Engine
	once   sync.Once
)

// Engine returns the singleton engine instance.
func Engine() *app.Engine {
	once.Do(initServices)
	return engine
}

// Logger returns the singleton logger instance.
func Logger() *logrus.Logger {
	once.Do(initServices)
	return logger
}

// Cfg returns the loaded configuration.
func Cfg() *config.Config {
	once.Do(initServices)
	return cfg
}

// Close releases the underlying database handle.
func Close() error {
	if kv == nil {
		return nil
	}
	return kv.Close()
}

// initServices initializes the whole dependency graph. Called once via
// sync.Once; a failure here is fatal since no command can run without
// the engine.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger = logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	kv, err = sqlite.Open(cfg.DBPath())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	store := persistence.NewStore(kv, logger)
	engine, err = app.NewEngine(context.Background(), store, logger)
	if err != nil {
		log.Fatalf("failed to initialize engine: %v", err)
	}
}
