package flags

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Keep pflag away from the test binary's own arguments
	originalArgs := os.Args
	os.Args = []string{"dronelog"}
	defer func() { os.Args = originalArgs }()

	tests := []struct {
		name     string
		envVars  map[string]string
		expected Settings
	}{
		{
			name:    "defaults",
			envVars: nil,
			expected: Settings{
				DBPath:   "dronelog.db",
				LogLevel: "info",
			},
		},
		{
			name: "environment overrides",
			envVars: map[string]string{
				"DB_PATH":   "/tmp/flights.db",
				"LOG_LEVEL": "debug",
			},
			expected: Settings{
				DBPath:   "/tmp/flights.db",
				LogLevel: "debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
			viper.Reset()

			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			settings := NewSettings()
			settings.LoadConfig()

			assert.Equal(t, tt.expected, *settings)
			assert.Equal(t, tt.expected.DBPath, settings.GetDBPath())
			assert.Equal(t, tt.expected.LogLevel, settings.GetLogLevel())
		})
	}
}
