// Package logger provides adapters for popular logger libraries to work with
// multimap's Logger interface.
//
// The adapters allow you to use your existing logger with multimap without
// writing boilerplate. Note that the standard library's slog.Logger already
// implements multimap.Logger directly.
//
// Example with zap:
//
//	import (
//	    "github.com/alexhholmes/multimap"
//	    "github.com/alexhholmes/multimap/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    m := multimap.New[string, int](
//	        multimap.WithLogger(logger.NewZap(zapLogger)),
//	    )
//	    m.Put("a", 1)
//	}
package logger
