package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwtarget/cmd/fwtarget/commands"
	"go.trai.ch/fwtarget/internal/app"
	"go.trai.ch/fwtarget/internal/build"
	"go.trai.ch/fwtarget/internal/core/domain"
)

type mockApp struct {
	opts     app.SourceOptions
	targetID string
	cleaned  bool
	err      error
}

func (m *mockApp) Targets(_ context.Context, opts app.SourceOptions) ([]domain.Device, error) {
	m.opts = opts
	return []domain.Device{{ID: "d1", Name: "Device One"}}, m.err
}

func (m *mockApp) DeviceConfig(_ context.Context, opts app.SourceOptions, targetID string) (domain.RawDeviceConfig, error) {
	m.opts, m.targetID = opts, targetID
	return domain.RawDeviceConfig{ProductName: "Device One", Platform: "esp32"}, m.err
}

func (m *mockApp) Options(_ context.Context, opts app.SourceOptions, targetID string) ([]domain.ConfigurableOption, error) {
	m.opts, m.targetID = opts, targetID
	return []domain.ConfigurableOption{domain.NewOption(domain.KeyBindingPhrase)}, m.err
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleaned = true
	return m.err
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Targets(t *testing.T) {
	t.Run("defaults leave the selector unset", func(t *testing.T) {
		mock := &mockApp{}

		out, err := execute(t, mock, "targets")
		require.NoError(t, err)
		assert.Nil(t, mock.opts.Selector)

		var devices []domain.Device
		require.NoError(t, json.Unmarshal([]byte(out), &devices))
		assert.Equal(t, "d1", devices[0].ID)
	})

	t.Run("wires selector and repository flags", func(t *testing.T) {
		mock := &mockApp{}

		_, err := execute(t, mock, "targets", "--tag", "3.4.0", "--repo-url", "https://example.com/r.git", "--sub-folder", "/")
		require.NoError(t, err)
		assert.Equal(t, app.SourceOptions{
			Selector:      domain.Tag{Name: "3.4.0"},
			RepositoryURL: "https://example.com/r.git",
			SubFolder:     "/",
		}, mock.opts)
	})

	t.Run("each selector flag", func(t *testing.T) {
		tests := map[string]domain.Selector{
			"--branch":       domain.Branch{Name: "x"},
			"--tag":          domain.Tag{Name: "x"},
			"--commit":       domain.Commit{Hash: "x"},
			"--pull-request": domain.PullRequest{HeadCommitHash: "x"},
			"--local":        domain.LocalPath{Path: "x"},
		}
		for flag, want := range tests {
			mock := &mockApp{}
			_, err := execute(t, mock, "targets", flag, "x")
			require.NoError(t, err, flag)
			assert.Equal(t, want, mock.opts.Selector, flag)
		}
	})

	t.Run("rejects more than one selector", func(t *testing.T) {
		mock := &mockApp{}

		_, err := execute(t, mock, "targets", "--branch", "master", "--tag", "v1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
		assert.Contains(t, err.Error(), "--branch")
		assert.Contains(t, err.Error(), "--tag")
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{err: errors.New("simulated error")}

		_, err := execute(t, mock, "targets")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Config(t *testing.T) {
	mock := &mockApp{}

	out, err := execute(t, mock, "config", "d1.uart", "--commit", "abc")
	require.NoError(t, err)
	assert.Equal(t, "d1.uart", mock.targetID)
	assert.Equal(t, domain.Commit{Hash: "abc"}, mock.opts.Selector)
	assert.JSONEq(t, `{"product_name": "Device One", "platform": "esp32", "upload_methods": null}`, out)

	_, err = execute(t, mock, "config")
	require.Error(t, err)
}

func TestCommands_Options(t *testing.T) {
	mock := &mockApp{}

	out, err := execute(t, mock, "options", "d1.uart")
	require.NoError(t, err)
	assert.Equal(t, "d1.uart", mock.targetID)
	assert.Contains(t, out, `"key": "BINDING_PHRASE"`)
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "clean")
	require.NoError(t, err)
	assert.True(t, mock.cleaned)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
