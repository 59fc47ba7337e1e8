package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/luxe-fashion/luxe-backend/config"
	"github.com/luxe-fashion/luxe-backend/internal/kv"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

// Snapshotter is the subset of the file store the scheduler needs.
type Snapshotter interface {
	Snapshot(dir string) (string, error)
}

// SnapshotScheduler periodically copies the store file into the backup
// directory and prunes old copies.
type SnapshotScheduler struct {
	cron  *cron.Cron
	store Snapshotter
	cfg   config.SnapshotConfig
}

func NewSnapshotScheduler(store Snapshotter, cfg config.SnapshotConfig) *SnapshotScheduler {
	return &SnapshotScheduler{
		cron:  cron.New(),
		store: store,
		cfg:   cfg,
	}
}

// Start registers the cron job and begins running it.
func (s *SnapshotScheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Schedule, s.runOnce)
	if err != nil {
		logger.Error("Failed to add snapshot cron job", err, map[string]interface{}{
			"schedule": s.cfg.Schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Snapshot scheduler started", map[string]interface{}{
		"schedule": s.cfg.Schedule,
		"dir":      s.cfg.Dir,
		"keep":     s.cfg.Keep,
	})

	return nil
}

// Stop halts the scheduler. A snapshot already in flight completes.
func (s *SnapshotScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Snapshot scheduler stopped")
}

func (s *SnapshotScheduler) runOnce() {
	path, err := s.store.Snapshot(s.cfg.Dir)
	if err != nil {
		logger.Error("Scheduled snapshot failed", err, map[string]interface{}{
			"dir": s.cfg.Dir,
		})
		return
	}

	logger.Info("Snapshot written", map[string]interface{}{
		"path": path,
	})

	if err := kv.PruneSnapshots(s.cfg.Dir, s.cfg.Keep); err != nil {
		logger.Warn("Snapshot pruning failed", map[string]interface{}{
			"dir":   s.cfg.Dir,
			"error": err.Error(),
		})
	}
}
