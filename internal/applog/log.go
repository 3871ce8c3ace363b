// Package applog is a thin zap.Logger wrapper used only at the CLI
// boundary (cmd/campsort); library packages (model, rbl, solver, staffing,
// scoring) never log.
package applog

import "go.uber.org/zap"

var logger *zap.Logger

// Init configures the package-level logger. prod selects zap's production
// encoder (JSON, info level) over its development one (console, debug
// level). Calling Init twice is a no-op.
func Init(prod bool) error {
	if logger != nil {
		return nil
	}
	var err error
	if prod {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	return err
}

// L returns the package-level logger. It panics if Init has not run.
func L() *zap.Logger {
	if logger == nil {
		panic("applog: logger not initialized")
	}
	return logger
}
