package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwtarget/internal/adapters/config"
	"go.trai.ch/fwtarget/internal/adapters/targets"
	"go.trai.ch/fwtarget/internal/app"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/core/ports/mocks"
	"go.trai.ch/fwtarget/internal/engine/catalog"
	"go.trai.ch/fwtarget/internal/engine/guard"
	"go.trai.ch/fwtarget/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const targetsJSON = `{
  "alpha_2400_rx": {"category": "Alpha", "config": {"product_name": "Alpha RX", "platform": "esp8285", "upload_methods": ["uart", "wifi"]}},
  "beta_900_tx": {"category": "Beta", "config": {"product_name": "Beta TX", "platform": "stm32", "upload_methods": ["stlink"]}}
}`

// localProvider wires the real engine against a local hardware directory. No git is needed.
func localProvider(t *testing.T) (ComponentProvider, string, *mocks.MockLogger) {
	t.Helper()
	root := t.TempDir()
	hw := filepath.Join(root, domain.HardwareDir)
	require.NoError(t, os.MkdirAll(hw, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(hw, domain.DescriptionFile), []byte(targetsJSON), 0o600))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	cfg := config.Default()
	cfg.StorageDir = filepath.Join(root, "cache")

	provider := func(context.Context) (*app.Components, error) {
		res := resolver.New(mocks.NewMockToolLocator(ctrl), mocks.NewMockSourceFetcherFactory(ctrl), log, resolver.Config{
			StorageDir: cfg.StorageDir,
		})
		loader := catalog.New(res, targets.NewParser(), guard.New(), log, cfg.LockTimeout)
		return app.NewComponents(app.New(loader, cfg), log, cfg), nil
	}
	return provider, root, log
}

func TestRun_Targets(t *testing.T) {
	provider, root, _ := localProvider(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"targets", "--local", root}, &stdout, &stderr, provider)
	require.Equal(t, 0, code, stderr.String())

	var devices []domain.Device
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &devices))
	require.Len(t, devices, 2)
	assert.Equal(t, "alpha_2400_rx", devices[0].ID)
	assert.Equal(t, "beta_900_tx", devices[1].ID)
	assert.Equal(t, domain.FlashingWIFI, devices[0].Targets[1].FlashingMethod)
}

func TestRun_Options(t *testing.T) {
	provider, root, _ := localProvider(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"options", "alpha_2400_rx.uart", "--local", root}, &stdout, &stderr, provider)
	require.Equal(t, 0, code, stderr.String())

	var options []domain.ConfigurableOption
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &options))
	require.NotEmpty(t, options)
	assert.Equal(t, domain.KeyBindingPhrase, options[0].Key)
}

func TestRun_CommandErrorIsLogged(t *testing.T) {
	provider, root, log := localProvider(t)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrUnknownDevice))
	})
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"config", "gamma", "--local", root}, &stdout, &stderr, provider)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
}

func TestRun_ProviderError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	provider := func(context.Context) (*app.Components, error) {
		return nil, domain.ErrInvalidConfig
	}

	code := run(context.Background(), []string{"targets"}, &stdout, &stderr, provider)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: ")
}
