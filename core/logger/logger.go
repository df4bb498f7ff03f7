package logger

// Logger exposes logging methods for common severity levels. The analysis
// core itself never logs; the interface exists for the service and CLI
// layers wrapped around it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
