package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func InitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create any missing database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			st, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			fmt.Printf("Database ready at %s\n", cfg.DatabaseURL)
			return nil
		},
	}
}
