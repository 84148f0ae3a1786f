// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/internal/config"
	"github.com/katalvlaran/hydronet/internal/logger"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewWithWriter(&buf, config.LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Int("nodes", 4).Msg("built")

	var line map[string]interface{}
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "built", line["message"])
	assert.Equal(t, "hydrosim", line["service"])
	assert.EqualValues(t, 4, line["nodes"])
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewWithWriter(&buf, config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_Errors(t *testing.T) {
	_, _, err := logger.New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
	_, _, err = logger.New(config.LogConfig{Level: "info", Output: "printer"})
	assert.Error(t, err)
	_, err = logger.NewWithWriter(&bytes.Buffer{}, config.LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")
	l, closer, err := logger.New(config.LogConfig{Level: "info", Output: "file", FilePath: path})
	require.NoError(t, err)
	l.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
