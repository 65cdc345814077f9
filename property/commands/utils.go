package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/internal/config"
	"github.com/beesaferoot/rentdesk/internal/logging"
	"github.com/beesaferoot/rentdesk/internal/store"
)

// setup loads config and builds the logger; every subcommand starts here.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}

// openStore opens the configured database and ensures the schema exists.
func openStore(cfg *config.Config, logger *zap.Logger) (*store.Store, error) {
	st, err := store.Open(cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Init(); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}
