package logger

import (
	"testing"

	"github.com/shulepay/shulepay/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name        string
		logLvl      string
		expectError bool
	}{
		{name: "Debug level", logLvl: "debug"},
		{name: "Info level", logLvl: "info"},
		{name: "Warn level", logLvl: "warn"},
		{name: "Error level", logLvl: "error"},
		{name: "Unsupported level", logLvl: "verbose", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
