package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opora-health/opora_backend/config"
	"github.com/opora-health/opora_backend/pkg/database"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the application database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Println("Initializing database...")
			err = database.InitializeDatabase(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Println("Database initialized successfully.")
			return nil
		},
	}

	return cmd
}
