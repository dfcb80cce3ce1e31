package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage backends accepted by the --storage flag.
const (
	storageSlice = "slice"
	storageTree  = "tree"
)

// config holds the demo settings, resolved from flags, environment
// variables prefixed with SPARSEDEMO_ and an optional config file.
type config struct {
	Rows     int
	Wreck    int
	Seed     uint64
	Storage  string
	LogLevel string
}

func addFlags(fs *pflag.FlagSet) {
	fs.Int("rows", 20, "Number of random rows pushed to the table")
	fs.Int("wreck", 10, "Row erased from the table after filling it")
	fs.Uint64("seed", 0, "Seed of the random generator, 0 picks a random seed")
	fs.String("storage", storageSlice, "Slot storage of the columns (slice, tree)")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("config", "", "Path to a YAML or JSON config file (optional)")
}

func loadConfig(fs *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetEnvPrefix("SPARSEDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := config{
		Rows:     v.GetInt("rows"),
		Wreck:    v.GetInt("wreck"),
		Seed:     v.GetUint64("seed"),
		Storage:  v.GetString("storage"),
		LogLevel: v.GetString("log-level"),
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	if cfg.Rows < 0 {
		return fmt.Errorf("invalid rows %d: must not be negative", cfg.Rows)
	}
	if cfg.Wreck < 0 {
		return fmt.Errorf("invalid wreck %d: must not be negative", cfg.Wreck)
	}
	switch cfg.Storage {
	case storageSlice, storageTree:
	default:
		return fmt.Errorf("invalid storage %q: must be %s or %s", cfg.Storage, storageSlice, storageTree)
	}
	return nil
}
