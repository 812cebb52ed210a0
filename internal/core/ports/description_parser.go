package ports

import "go.trai.ch/fwtarget/internal/core/domain"

// DescriptionParser loads the device description document.
//
//go:generate mockgen -source=description_parser.go -destination=mocks/mock_description_parser.go -package=mocks
type DescriptionParser interface {
	// LoadDeviceDescriptions parses the document at path.
	// It fails with domain.ErrDescriptionNotFound or domain.ErrDescriptionParse.
	LoadDeviceDescriptions(path string) (*domain.Document, error)
}
