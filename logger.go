package multimap

// Logger receives the few events a MultiMap reports: Clear at Info and
// failed Check runs at Error. Lookups and ordinary mutations are silent.
//
// The method set matches *slog.Logger, which can be passed directly. Package
// logger adapts logrus, zap and zerolog.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
}

// DiscardLogger drops everything. It is the default.
type DiscardLogger struct{}

func (DiscardLogger) Error(string, ...any) {}

func (DiscardLogger) Warn(string, ...any) {}

func (DiscardLogger) Info(string, ...any) {}
