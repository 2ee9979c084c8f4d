// Package config reads the small amount of environment-driven configuration
// tiptally supports. Everything has a sensible default; no config file is
// required.
package config

import "os"

// Config is the application configuration.
type Config struct {
	// Locale is the BCP 47 tag used for number formatting (TIPTALLY_LOCALE).
	Locale string

	// CurrencySymbol prefixes formatted amounts (TIPTALLY_CURRENCY_SYMBOL).
	CurrencySymbol string

	// DefaultProvince is the province selected when the screen opens
	// (TIPTALLY_PROVINCE).
	DefaultProvince string

	// LogFile, when set, receives log output while the screen is running so
	// logging does not corrupt the terminal (TIPTALLY_LOG_FILE). Empty means
	// logs are discarded during screen sessions.
	LogFile string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Locale:          getEnv("TIPTALLY_LOCALE", "en-CA"),
		CurrencySymbol:  getEnv("TIPTALLY_CURRENCY_SYMBOL", "$"),
		DefaultProvince: getEnv("TIPTALLY_PROVINCE", "ON"),
		LogFile:         getEnv("TIPTALLY_LOG_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
