package flags

import (
	"log"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings struct
type Settings struct {
	DBPath   string
	LogLevel string
}

// NewSettings creates a new settings instance
func NewSettings() *Settings {
	return &Settings{}
}

// LoadConfig loads the configuration from environment variables, flags, and default values
func (s *Settings) LoadConfig() {
	viper.SetDefault("db_path", "dronelog.db")
	viper.SetDefault("log_level", "info")

	pflag.StringP("db_path", "D", "", "Path to the SQLite database file")
	pflag.StringP("log_level", "L", "", "Log level")

	pflag.Parse()

	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		log.Printf("failed to bind flags: %v", err)
	}
	viper.AutomaticEnv()

	s.DBPath = viper.GetString("db_path")
	s.LogLevel = viper.GetString("log_level")
}

// GetDBPath returns the database file path
func (s *Settings) GetDBPath() string {
	return s.DBPath
}

// GetLogLevel returns the log level
func (s *Settings) GetLogLevel() string {
	return s.LogLevel
}
