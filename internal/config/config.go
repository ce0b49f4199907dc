// Package config holds process-wide configuration backed by viper.
package config

import (
	"github.com/spf13/viper"
)

// Global configuration values, populated by InitConfig.
var (
	// CacheDBFile is the path to the SQLite response cache.
	CacheDBFile string
	// MocksEnabled routes all API traffic to the embedded mock server.
	// Read once at process start; changing it requires a restart.
	MocksEnabled bool
)

// SetDefaults registers all configuration defaults with viper.
func SetDefaults() {
	viper.SetDefault("cache.dbfile", "./openshelf-cache.db")
	viper.SetDefault("cache.disabled", false)
	viper.SetDefault("theme", "light")
	viper.SetDefault("mocks.enabled", false)
}

// InitConfig populates the globals from viper.
func InitConfig() {
	SetDefaults()

	CacheDBFile = viper.GetString("cache.dbfile")
	MocksEnabled = viper.GetBool("mocks.enabled")
}

// SetMocksEnabled overrides the mock toggle (CLI flag wins over config).
func SetMocksEnabled(enabled bool) {
	MocksEnabled = enabled
}
