package cmd

import (
	"fmt"

	"github.com/asheth/quizdeck/internal/app"
	"github.com/asheth/quizdeck/internal/opentdb"
	"github.com/asheth/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Store:      st,
		Client:     opentdb.NewClient(nil),
		SkipSplash: skipSplash,
	})
}

// openStore resolves the database path and opens the score store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
