package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/app"
	"github.com/tarealabs/tarea/internal/config"
	"github.com/tarealabs/tarea/internal/database"
	"github.com/tarealabs/tarea/internal/logging"
	"github.com/tarealabs/tarea/internal/testutil"
)

// GetApp resolves the application container for a command. Integration tests
// inject a prebuilt app through the command context under testutil.TestAppKey;
// otherwise the configured database is opened and a fresh container is built.
// The returned cleanup releases whatever this call opened, so a test-injected
// app is left alone.
func GetApp(cmd *cobra.Command) (*app.App, func(), error) {
	if testApp, ok := cmd.Context().Value(testutil.TestAppKey).(*app.App); ok {
		return testApp, func() {}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Logging is best-effort; commands still work without a log file
	_ = logging.Init(cfg.LogLevel)

	db, err := database.InitDB(cmd.Context(), cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db)

	cleanup := func() {
		_ = application.Close()
	}

	return application, cleanup, nil
}
