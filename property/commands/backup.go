package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/rentdesk/internal/backup"
)

func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive the database file to a timestamped zip",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, _ := cmd.Flags().GetBool("schedule")

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			st, err := openStore(cfg, logger)
			if err != nil {
				return err
			}

			path, ok := st.FilePath()
			_ = st.Close()
			if !ok {
				return fmt.Errorf("backup requires a file-backed store, got %s", cfg.DatabaseURL)
			}

			if !schedule {
				zipPath, err := backup.Archive(path, cfg.BackupDir)
				if err != nil {
					return err
				}
				fmt.Printf("Backup written: %s\n", zipPath)
				return nil
			}

			scheduler, err := backup.NewScheduler(path, cfg.BackupDir, cfg.BackupSchedule, logger)
			if err != nil {
				return err
			}
			scheduler.Start()
			defer scheduler.Stop()

			fmt.Printf("Backing up %s to %s on schedule %q, Ctrl-C to stop\n", path, cfg.BackupDir, cfg.BackupSchedule)
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			return nil
		},
	}

	cmd.Flags().Bool("schedule", false, "Keep running and archive on the configured cron schedule")

	return cmd
}
