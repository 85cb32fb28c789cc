package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/svanberg/goto/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate legacy JSON bookmarks to YAML",
	Long: `Converts every legacy JSON bookmark record in the data directory to
the current YAML format. Safe to re-run: already converted records are
left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !cfg.Migration {
			return errors.New("migration is disabled in the config")
		}
		count, err := migrate.Run(store, logger)
		if err != nil {
			return err
		}
		cmd.Printf("Migrated %d bookmarks from JSON to YAML\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
