package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Logger returns a development logger on STDERR if verbose, a no-op one otherwise.
func (rcc *rootCmdConfig) Logger() *zap.Logger {
	if rcc.logger != nil {
		return rcc.logger
	}
	rcc.logger = zap.NewNop()
	if rcc.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		} else {
			rcc.logger = l
		}
	}
	return rcc.logger
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.Logger().Sugar().Infof(format, a...)
}
