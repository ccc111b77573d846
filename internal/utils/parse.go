package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile loads and parses a TOML file into the provided struct.
// Decode errors (including value type mismatches) are returned to the
// caller so bad configuration fails at startup, not mid-build. Keys the
// struct does not recognize are logged and otherwise ignored.
func LoadTOMLFile(path string, v interface{}) error {
	meta, err := toml.DecodeFile(path, v)
	if err != nil {
		return err
	}
	for _, key := range meta.Undecoded() {
		log.Warnf("unknown config key %q in %s", key.String(), path)
	}
	return nil
}

// SaveTOMLFile saves a struct to a TOML file.
func SaveTOMLFile(path string, v interface{}) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(v)
}
