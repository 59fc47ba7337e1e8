package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxe-fashion/luxe-backend/config"
)

type fakeSnapshotter struct {
	calls int
	err   error
}

func (f *fakeSnapshotter) Snapshot(dir string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return dir + "/snapshot.json", nil
}

func TestSnapshotScheduler_StartAndStop(t *testing.T) {
	s := NewSnapshotScheduler(&fakeSnapshotter{}, config.SnapshotConfig{
		Schedule: "0 * * * *",
		Dir:      t.TempDir(),
		Keep:     3,
	})

	require.NoError(t, s.Start())
	s.Stop()
}

func TestSnapshotScheduler_InvalidSchedule(t *testing.T) {
	s := NewSnapshotScheduler(&fakeSnapshotter{}, config.SnapshotConfig{
		Schedule: "not a cron expression",
	})

	assert.Error(t, s.Start())
}

func TestSnapshotScheduler_RunOnce(t *testing.T) {
	fake := &fakeSnapshotter{}
	s := NewSnapshotScheduler(fake, config.SnapshotConfig{
		Schedule: "0 * * * *",
		Dir:      t.TempDir(),
		Keep:     3,
	})

	s.runOnce()
	assert.Equal(t, 1, fake.calls)
}

func TestSnapshotScheduler_RunOnce_SnapshotError(t *testing.T) {
	fake := &fakeSnapshotter{err: errors.New("disk full")}
	s := NewSnapshotScheduler(fake, config.SnapshotConfig{
		Schedule: "0 * * * *",
		Dir:      t.TempDir(),
		Keep:     3,
	})

	// Errors are logged, not fatal
	s.runOnce()
	assert.Equal(t, 1, fake.calls)
}
