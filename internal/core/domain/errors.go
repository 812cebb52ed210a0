package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when the version-control executable cannot be located.
	ErrToolNotFound = zerr.New("version control tool not found")

	// ErrLockTimeout is returned when exclusive access to the target data could not be acquired in time.
	ErrLockTimeout = zerr.New("timed out waiting for exclusive access")

	// ErrInvalidRequest is returned when a selector or request is malformed.
	ErrInvalidRequest = zerr.New("invalid request")

	// ErrUnsupportedSource is returned for a selector kind the resolver does not know.
	ErrUnsupportedSource = zerr.New("unsupported source kind")

	// ErrUnknownDevice is returned when a device id is absent from the description document.
	ErrUnknownDevice = zerr.New("unknown device")

	// ErrUnrecognizedUploadMethod is returned when a device references an upload method outside the flashing table.
	ErrUnrecognizedUploadMethod = zerr.New("unrecognized upload method")

	// ErrDescriptionNotFound is returned when the description document does not exist.
	ErrDescriptionNotFound = zerr.New("device description document not found")

	// ErrDescriptionParse is returned when the description document is malformed.
	ErrDescriptionParse = zerr.New("failed to parse device description document")

	// ErrFetchFailed is returned when a fetcher could not materialize the requested reference.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrInvalidConfig is returned when the configuration file holds unusable values.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
