package main

import "go.uber.org/zap"

// newLogger builds the sugared logger handed to nextclosure.WithLogger: a
// no-op logger by default, a development logger (human-readable, colored
// level names) when --verbose is set.
func newLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return l.Sugar()
}
