package cmd

import (
	"fmt"

	"github.com/okarum/beatdeck/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		sets, diffs, err := st.Sets().Count(cmd.Context())
		if err != nil {
			return fmt.Errorf("count library: %w", err)
		}

		fmt.Printf("beatmap sets: %d\n", sets)
		fmt.Printf("difficulties: %d\n", diffs)
		return nil
	},
}
