package command

import (
	"fmt"
	"log/slog"
	"os"

	"placehub/database"
	"placehub/database/seed"
	"placehub/internal/config"

	"github.com/spf13/cobra"
)

// importCmd loads categories and places from a JSON export:
//
//	placehub-cli import ./places.json
var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Bulk import categories and places",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnvFile(); err != nil {
			return err
		}
		// the import only needs the database, not the API secrets
		cfg := &config.Config{
			GoEnv:       os.Getenv("GO_ENV"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
			LogLevel:    "info",
		}
		if !cfg.HasDatabase() {
			return fmt.Errorf("DATABASE_URL is required")
		}

		logger := slog.New(slog.NewTextHandler(cmd.OutOrStdout(), nil))

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		data, err := seed.Read(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		logger.Info("loaded dataset", "categories", len(data.Categories), "places", len(data.Places))

		db, err := database.Connect(cfg, logger)
		if err != nil {
			return err
		}
		defer database.Close(db)

		summary, err := seed.Import(cmd.Context(), db, data, logger)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		logger.Info("import completed",
			"categories", summary.Categories,
			"places", summary.Places,
			"skipped", summary.SkippedPlaces,
			"images", summary.Images,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
