package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide logger. Debug switches to the development
// encoder with stack traces on warnings.
func New(debug bool) *zap.Logger {
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return l
	}

	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
