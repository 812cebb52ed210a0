package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// NopLogger discards everything. It stands in for an absent logger.
type NopLogger struct{}

// Info implements Logger.
func (NopLogger) Info(string) {}

// Warn implements Logger.
func (NopLogger) Warn(string) {}

// Error implements Logger.
func (NopLogger) Error(error) {}

// OrNop returns l, or a NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
