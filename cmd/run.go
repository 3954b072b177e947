package cmd

import (
	"fmt"
	"os"

	"github.com/okarum/beatdeck/internal/api"
	"github.com/okarum/beatdeck/internal/app"
	"github.com/okarum/beatdeck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	var opts []api.Option
	if base := os.Getenv("BEATDECK_API"); base != "" {
		opts = append(opts, api.WithBaseURL(base))
	}

	return app.Run(st.Sets(), api.NewClient(opts...))
}
