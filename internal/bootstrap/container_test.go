package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"feature-feedback-board/internal/config"
	"feature-feedback-board/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Environment: "test", NoColor: true},
		Board: config.BoardConfig{IdStrategy: "sequence", DefaultSort: "title"},
	}
}

func TestNewContainerWithSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
features:
  - title: Mobile responsive layout
    description: Improve layout spacing and typography on smaller screens.
    status: Completed
    votes: 38
  - title: Dark mode toggle
    description: Add an accessible dark mode with system preference support.
    status: Planned
    votes: 24
`), 0o600))

	cfg := testConfig()
	cfg.Board.SeedFile = path

	var out bytes.Buffer
	c, err := newContainer(cfg, logger.NewNopLogger(), &out)
	require.NoError(t, err)

	list := c.FeatureService.List(context.Background())
	require.Len(t, list.Features, 2)
	assert.Equal(t, "title", list.Sort)
	assert.Equal(t, "Dark mode toggle", list.Features[0].Title)
	assert.Equal(t, "f2", list.Features[0].Id)
	assert.Equal(t, 24, list.Features[0].Votes)
}

func TestNewContainerRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Board.IdStrategy = "clock"
	_, err := newContainer(cfg, logger.NewNopLogger(), &bytes.Buffer{})
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Board.DefaultSort = "hot"
	_, err = newContainer(cfg, logger.NewNopLogger(), &bytes.Buffer{})
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Board.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = newContainer(cfg, logger.NewNopLogger(), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewContainerShell(t *testing.T) {
	var out bytes.Buffer
	c, err := newContainer(testConfig(), logger.NewNopLogger(), &out)
	require.NoError(t, err)

	_, err = c.Shell.Execute(context.Background(), `add "Export feedback" "Allow CSV export of feedback items."`)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Added Export feedback as f1")
}

func TestNewContainerWritesLogFile(t *testing.T) {
	cfg := testConfig()
	cfg.App.LogFilePath = filepath.Join(t.TempDir(), "board.log.json")

	c, err := NewContainer(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	_, err = c.Shell.Execute(context.Background(), `add "Export feedback" "Allow CSV export of feedback items."`)
	require.NoError(t, err)
	_ = c.Logger.Sync()

	data, err := os.ReadFile(cfg.App.LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Feature created")
}
