package config

import (
	"github.com/spf13/viper"
)

// Viper keys understood by the application.
const (
	KeyDatabasePath  = "database.path"
	KeyLoggingLevel  = "logging.level"
	KeyLoggingFormat = "logging.format"
)

// SetDefaults registers fallback values for every known key.
func SetDefaults() {
	viper.SetDefault(KeyDatabasePath, "~/.local/share/budgeteer/budgeteer.db")
	viper.SetDefault(KeyLoggingLevel, "info")
	viper.SetDefault(KeyLoggingFormat, "console")
}

// DatabasePath returns the configured database location with ~ and
// environment variables expanded.
func DatabasePath() string {
	return ExpandPath(viper.GetString(KeyDatabasePath))
}
