package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestProjectDevice(t *testing.T) {
	entry := domain.DeviceEntry{
		Category: "Happymodel 2.4 GHz",
		Config: domain.RawDeviceConfig{
			ProductName:   "Device One",
			Platform:      "esp32",
			UploadMethods: []string{"UART", "dfu"},
		},
	}

	device, err := domain.ProjectDevice("d1", entry)
	require.NoError(t, err)

	assert.Equal(t, "d1", device.ID)
	assert.Equal(t, "Device One", device.Name)
	assert.Equal(t, "Happymodel 2.4 GHz", device.Category)
	assert.Equal(t, domain.DeviceType, device.DeviceType)
	assert.True(t, device.Supported)
	assert.NotNil(t, device.TargetGroups)
	assert.Empty(t, device.TargetGroups)
	assert.Equal(t, []domain.Target{
		{ID: "d1.UART", Name: "d1.UART", FlashingMethod: domain.FlashingUART},
		{ID: "d1.dfu", Name: "d1.dfu", FlashingMethod: domain.FlashingDFU},
	}, device.Targets)
}

func TestProjectDevice_NoUploadMethods(t *testing.T) {
	device, err := domain.ProjectDevice("d2", domain.DeviceEntry{})
	require.NoError(t, err)
	assert.Empty(t, device.Targets)
}

func TestProjectDevice_UnrecognizedUploadMethod(t *testing.T) {
	entry := domain.DeviceEntry{Config: domain.RawDeviceConfig{UploadMethods: []string{"uart", "xyz"}}}

	_, err := domain.ProjectDevice("d1", entry)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnrecognizedUploadMethod))
	assert.Contains(t, err.Error(), `"xyz"`)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, "xyz", meta["upload_method"])
	assert.Equal(t, "d1", meta["device_id"])
}

func TestFlashingMethodFor_CaseInsensitive(t *testing.T) {
	tests := map[string]domain.FlashingMethod{
		"betaflight": domain.FlashingBetaflightPassthrough,
		"DFU":        domain.FlashingDFU,
		"Etx":        domain.FlashingEdgeTxPassthrough,
		"stlink":     domain.FlashingSTLink,
		"uart":       domain.FlashingUART,
		"WiFi":       domain.FlashingWIFI,
	}
	for in, want := range tests {
		got, err := domain.FlashingMethodFor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDocument_OrderAndLookup(t *testing.T) {
	doc := domain.NewDocument()
	doc.Add("b", domain.DeviceEntry{Category: "first"})
	doc.Add("a", domain.DeviceEntry{Category: "second"})
	doc.Add("b", domain.DeviceEntry{Category: "replaced"})

	assert.Equal(t, 2, doc.Len())

	var ids []string
	for id := range doc.All() {
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"b", "a"}, ids)

	entry, err := doc.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, "replaced", entry.Category)
}

func TestDocument_LookupUnknown(t *testing.T) {
	doc := domain.NewDocument()

	_, err := doc.Lookup("missing.device")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownDevice))
	assert.Contains(t, err.Error(), "missing.device")
}
