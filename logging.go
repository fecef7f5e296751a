package main

import (
	"go.uber.org/zap"
)

// logger carries diagnostic output only; user-facing messages go
// through showError and stdout. Stays a no-op unless -debug is set.
var logger = zap.NewNop()

func initLogging(debug bool) {
	if !debug {
		return
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if l, err := cfg.Build(); err == nil {
		logger = l
	}
}
