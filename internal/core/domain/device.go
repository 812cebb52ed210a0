package domain

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// RawDeviceConfig is the configuration block of one device in the description document.
type RawDeviceConfig struct {
	ProductName   string   `json:"product_name"`
	Platform      string   `json:"platform"`
	UploadMethods []string `json:"upload_methods"`
	Features      []string `json:"features,omitempty"`
}

// HasFeature reports whether the device declares the given feature flag.
func (c RawDeviceConfig) HasFeature(feature string) bool {
	return slices.Contains(c.Features, feature)
}

// DeviceEntry is one record of the description document.
type DeviceEntry struct {
	Category string          `json:"category"`
	Config   RawDeviceConfig `json:"config"`
}

// Document maps device identifiers to their entries while preserving document order.
type Document struct {
	ids     []string
	entries map[string]DeviceEntry
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{entries: make(map[string]DeviceEntry)}
}

// Add inserts or replaces an entry. A replaced entry keeps its original position.
func (d *Document) Add(id string, entry DeviceEntry) {
	if _, exists := d.entries[id]; !exists {
		d.ids = append(d.ids, id)
	}
	d.entries[id] = entry
}

// Len returns the number of devices in the document.
func (d *Document) Len() int {
	return len(d.ids)
}

// Lookup returns the entry of the given device or ErrUnknownDevice naming the id.
func (d *Document) Lookup(id string) (DeviceEntry, error) {
	entry, ok := d.entries[id]
	if !ok {
		return DeviceEntry{}, zerr.With(zerr.Wrap(ErrUnknownDevice, strconv.Quote(id)), "device_id", id)
	}
	return entry, nil
}

// All yields every device in document order.
func (d *Document) All() iter.Seq2[string, DeviceEntry] {
	return func(yield func(string, DeviceEntry) bool) {
		for _, id := range d.ids {
			if !yield(id, d.entries[id]) {
				return
			}
		}
	}
}

// FlashingMethod is the way firmware is written to a device.
type FlashingMethod string

// Known flashing methods.
const (
	FlashingBetaflightPassthrough FlashingMethod = "BetaflightPassthrough"
	FlashingDFU                   FlashingMethod = "DFU"
	FlashingEdgeTxPassthrough     FlashingMethod = "EdgeTxPassthrough"
	FlashingSTLink                FlashingMethod = "STLink"
	FlashingUART                  FlashingMethod = "UART"
	FlashingWIFI                  FlashingMethod = "WIFI"
)

var uploadMethods = map[string]FlashingMethod{
	"betaflight": FlashingBetaflightPassthrough,
	"dfu":        FlashingDFU,
	"etx":        FlashingEdgeTxPassthrough,
	"stlink":     FlashingSTLink,
	"uart":       FlashingUART,
	"wifi":       FlashingWIFI,
}

// FlashingMethodFor maps an upload method string, case-insensitively, to its flashing method.
func FlashingMethodFor(uploadMethod string) (FlashingMethod, error) {
	method, ok := uploadMethods[strings.ToLower(uploadMethod)]
	if !ok {
		err := zerr.Wrap(ErrUnrecognizedUploadMethod, strconv.Quote(uploadMethod))
		return "", zerr.With(err, "upload_method", uploadMethod)
	}
	return method, nil
}

// DeviceType is the fixed type tag carried by every projected device.
const DeviceType = "ExpressLRS"

// Target is a flashable (device, upload method) combination.
type Target struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	FlashingMethod FlashingMethod `json:"flashingMethod"`
}

// Device is the public catalog shape of one device.
type Device struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Targets      []Target `json:"targets"`
	TargetGroups []string `json:"targetGroups"`
	DeviceType   string   `json:"deviceType"`
	Supported    bool     `json:"supported"`
}

// ProjectDevice converts one description entry into its catalog shape.
// Targets follow the order of the upload methods.
func ProjectDevice(id string, entry DeviceEntry) (Device, error) {
	targets := make([]Target, 0, len(entry.Config.UploadMethods))
	for _, uploadMethod := range entry.Config.UploadMethods {
		method, err := FlashingMethodFor(uploadMethod)
		if err != nil {
			return Device{}, zerr.With(err, "device_id", id)
		}
		targetID := id + "." + uploadMethod
		targets = append(targets, Target{
			ID:             targetID,
			Name:           targetID,
			FlashingMethod: method,
		})
	}

	return Device{
		ID:           id,
		Name:         entry.Config.ProductName,
		Category:     entry.Category,
		Targets:      targets,
		TargetGroups: []string{},
		DeviceType:   DeviceType,
		Supported:    true,
	}, nil
}
