package command

// root.go defines the placehub-cli root command and its global flags.

import (
	"fmt"
	"os"

	"placehub/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var envFile string // optional .env to load before reading the environment

var rootCmd = &cobra.Command{
	Use:   "placehub-cli",
	Short: "placehub-cli - local tooling for the placehub API",
	Long: `placehub-cli helps operators run the placehub API locally:
- mint session tokens for testing procedures
- bulk import categories and places from a JSON export`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load")
}

func loadEnvFile() error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

// loadConfig reads the same configuration as the API server.
func loadConfig() (*config.Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}
	return config.LoadConfig()
}
