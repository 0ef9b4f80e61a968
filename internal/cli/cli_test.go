package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"coriolis-view/internal/config"
	"coriolis-view/internal/logging"
	"coriolis-view/internal/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type runnerSpy struct {
	called   bool
	settings *config.Settings
}

func (r *runnerSpy) run(_ context.Context, s *config.Settings, _ *zap.Logger) error {
	r.called = true
	r.settings = s
	return nil
}

func execute(t *testing.T, spy *runnerSpy, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(logging.ResetForTest)
	t.Chdir(t.TempDir())

	cmd := NewRootCommand(spy.run)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootRunsWindowWithDefaults(t *testing.T) {
	spy := &runnerSpy{}
	_, err := execute(t, spy)
	require.NoError(t, err)

	require.True(t, spy.called)
	assert.Equal(t, config.DefaultAngularSpeed, spy.settings.Simulation.AngularSpeed)
	assert.Equal(t, "info", spy.settings.Logger.Level)
}

func TestRootFlagsOverrideConfig(t *testing.T) {
	spy := &runnerSpy{}
	_, err := execute(t, spy, "--angular-speed", "-2.5", "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, -2.5, spy.settings.Simulation.AngularSpeed)
	assert.Equal(t, "debug", spy.settings.Logger.Level)
}

func TestRootRejectsOutOfRangeSpeed(t *testing.T) {
	spy := &runnerSpy{}
	_, err := execute(t, spy, "--angular-speed", "9")
	assert.Error(t, err)
	assert.False(t, spy.called)
}

func TestRootVersion(t *testing.T) {
	spy := &runnerSpy{}
	out, err := execute(t, spy, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
	assert.False(t, spy.called)
}

func TestSnapshotCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	spy := &runnerSpy{}
	out, err := execute(t, spy, "snapshot",
		"--frames", "20", "--launch-at", "5", "--size", "500", "--out", dir)
	require.NoError(t, err)
	assert.False(t, spy.called)

	for _, name := range []string{snapshot.TopFile, snapshot.FrontFile, snapshot.CompositeFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, out, "launches=1")
}
