package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/okarum/beatdeck/internal/beatmap"
	"github.com/okarum/beatdeck/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>...",
	Short: "Import beatmap set descriptors into the library",
	Args:  cobra.MinimumNArgs(1),
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

		sets := st.Sets()
		batch := uuid.New().String()
		imported := 0

		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			set, err := beatmap.ParseSet(raw, path)
			if err != nil {
				return err
			}
			if err := sets.Upsert(cmd.Context(), set, batch); err != nil {
				return fmt.Errorf("store %s: %w", path, err)
			}
			fmt.Printf("imported %s (%d difficulties)\n", set.DisplayName(), len(set.Beatmaps))
			imported++
		}

		fmt.Printf("%d set(s) imported, batch %s\n", imported, batch)
		return nil
	},
}
