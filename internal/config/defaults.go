package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultJournalDir is where the game writes journals on Windows, relative to the home directory.
var DefaultJournalDir = filepath.Join("Saved Games", "Frontier Developments", "Elite Dangerous")

// SetDefaults registers the default of every key. Registering a key also
// lets its environment variable reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	journalDir := DefaultJournalDir
	if home, err := os.UserHomeDir(); err == nil {
		journalDir = filepath.Join(home, DefaultJournalDir)
	}

	// Journal defaults
	v.SetDefault("journal.dir", journalDir)
	v.SetDefault("journal.watch", true)
	v.SetDefault("journal.since_last_sale", true)

	// Server defaults
	v.SetDefault("server.address", "127.0.0.1:8081")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Reference data defaults
	v.SetDefault("data.tables_path", "")
	v.SetDefault("data.species_path", "")
	v.SetDefault("data.species_roster", "core")
}
