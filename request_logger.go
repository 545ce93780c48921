package client

import "github.com/go-resty/resty/v2"

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. It has the same method set as resty's logger, so a
// *zap.SugaredLogger or any similar printf-style logger can be supplied
// directly via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

var _ resty.Logger = RequestLogger(nil)

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
