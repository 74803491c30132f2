package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/emberforge/emberforge/store/sqlite"
)

// migrateConfig holds environment defaults for the migrate command. Flags
// override the environment.
type migrateConfig struct {
	DBPath        string `env:"EMBERFORGE_DB_PATH" envDefault:"emberforge.db"`
	MigrationsDir string `env:"EMBERFORGE_MIGRATIONS_DIR" envDefault:"migrations"`
	PoolSize      int    `env:"EMBERFORGE_POOL_SIZE" envDefault:"4"`
}

var (
	migrateDBPath string
	migrateDir    string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations to a database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cfg migrateConfig
		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
		if migrateDBPath != "" {
			cfg.DBPath = migrateDBPath
		}
		if migrateDir != "" {
			cfg.MigrationsDir = migrateDir
		}

		st, err := sqlite.Open(sqlite.Config{Path: cfg.DBPath, MaxConns: cfg.PoolSize})
		if err != nil {
			return err
		}
		defer st.Close()

		if err := sqlite.NewMigrator(st).Apply(cmd.Context(), cfg.MigrationsDir); err != nil {
			return err
		}

		cmd.Printf("applied migrations from %s to %s\n", cfg.MigrationsDir, cfg.DBPath)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDBPath, "db", "", "database file path")
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "migration scripts directory")
	rootCmd.AddCommand(migrateCmd)
}
