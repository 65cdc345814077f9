package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Archive zips the database file into destDir as tenantdb-<timestamp>.zip
// and returns the archive path. Best-effort by contract: it reads the
// live file without coordinating with in-flight writes.
func Archive(srcPath, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	ts := time.Now().Format("20060102-150405")
	zipPath := filepath.Join(destDir, fmt.Sprintf("tenantdb-%s.zip", ts))

	out, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	entry, err := zw.Create(filepath.Base(srcPath))
	if err != nil {
		return "", fmt.Errorf("failed to create archive entry: %w", err)
	}
	if _, err := io.Copy(entry, src); err != nil {
		return "", fmt.Errorf("failed to write archive entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize archive: %w", err)
	}

	return zipPath, nil
}

// Scheduler archives the database on a cron schedule. Failures are
// logged, never fatal.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func NewScheduler(srcPath, destDir, schedule string, logger *zap.Logger) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		zipPath, err := Archive(srcPath, destDir)
		if err != nil {
			logger.Error("backup failed", zap.Error(err))
			return
		}
		logger.Info("backup written", zap.String("path", zipPath))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}
	return &Scheduler{cron: c, logger: logger}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
