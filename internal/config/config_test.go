package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Uses defaults when the file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: the default window settings are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, Window{Title: "tic-tac-toe", Width: 720, Height: 720, FrameRate: 60}, conf.Window)
	})

	t.Run("Reads values from the file and fills the rest with defaults", func(t *testing.T) {
		// Given: a config file overriding the log level and window width
		path := writeConfig(t, "log-level: debug\nwindow:\n  width: 900\n")

		// When: loading the config
		conf, err := Load(path)

		// Then: file values win and untouched fields keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 900, conf.Window.Width)
		assert.Equal(t, 720, conf.Window.Height)
		assert.Equal(t, "tic-tac-toe", conf.Window.Title)
		assert.Equal(t, 60, conf.Window.FrameRate)
	})

	t.Run("Rejects a non-positive window size", func(t *testing.T) {
		// Given: a config file with a negative height
		path := writeConfig(t, "window:\n  height: -10\n")

		// When: loading the config
		_, err := Load(path)

		// Then: ErrInvalidWindowSize is returned
		require.ErrorIs(t, err, apperror.ErrInvalidWindowSize)
	})

	t.Run("Rejects a non-positive frame rate", func(t *testing.T) {
		// Given: a config file with a negative frame rate
		path := writeConfig(t, "window:\n  frame-rate: -1\n")

		// When: loading the config
		_, err := Load(path)

		// Then: ErrInvalidFrameRate is returned
		require.ErrorIs(t, err, apperror.ErrInvalidFrameRate)
	})

	t.Run("Fails on a malformed file", func(t *testing.T) {
		// Given: a config file that is not valid YAML
		path := writeConfig(t, "window: [unclosed\n")

		// When: loading the config
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	// Given: a config file with an invalid size
	path := writeConfig(t, "window:\n  width: -5\n")

	// When / Then: MustLoad panics
	assert.Panics(t, func() {
		MustLoad(path)
	})
}
