package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beesaferoot/rentdesk/internal/api"
	"github.com/beesaferoot/rentdesk/internal/backup"
	"github.com/beesaferoot/rentdesk/property"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			withBackups, _ := cmd.Flags().GetBool("with-backups")

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

			if withBackups {
				if path, ok := st.FilePath(); ok {
					scheduler, err := backup.NewScheduler(path, cfg.BackupDir, cfg.BackupSchedule, logger)
					if err != nil {
						return err
					}
					scheduler.Start()
					defer scheduler.Stop()
				} else {
					logger.Warn("scheduled backups need a file-backed store, skipping")
				}
			}

			service := property.NewService(st.DB(), logger)
			router := api.NewRouter(service, logger)

			logger.Info("starting rentdesk", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
			return router.Run(":" + cfg.Port)
		},
	}

	cmd.Flags().Bool("with-backups", false, "Archive the database on the configured schedule while serving")

	return cmd
}
