package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwtarget/internal/adapters/logger"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestLogger_Info(t *testing.T) {
	output := captureStderr(t, func() {
		// Created inside the capture so it binds the redirected stderr.
		logger.New().Info("fetching branch:master")
	})

	assert.Contains(t, output, "fetching branch:master")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf).Warn("lock contended")

	assert.Contains(t, buf.String(), "lock contended")
	assert.Contains(t, buf.String(), "WARN")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf).Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "permission denied")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestLogger_ErrorMetadata(t *testing.T) {
	var buf bytes.Buffer
	err := zerr.With(zerr.Wrap(domain.ErrToolNotFound, "locating git"), "search_path", "/opt/git/bin")

	logger.NewWithWriter(&buf).Error(err)

	out := buf.String()
	assert.Contains(t, out, "locating git: version control tool not found")
	assert.Contains(t, out, "search_path=/opt/git/bin")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf).Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("one")
	lg.SetOutput(&second)
	lg.Info("two")

	assert.True(t, strings.Contains(first.String(), "one"))
	assert.False(t, strings.Contains(first.String(), "two"))
	assert.Contains(t, second.String(), "two")
}
