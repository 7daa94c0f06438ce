package config

import (
	"flag"
	"os"
	"path/filepath"
)

// GetServerConfig loads, merges, and validates the API server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (parsed from args)
//  4. JSON file (path resolved from sources 2 and 3)
//
// The returned [Holder] re-runs steps 1, 2 and 4 on every reload; flags are
// parsed once.
func GetServerConfig(args []string) (*Holder, error) {
	return load(args, (*StructuredConfig).validateServer)
}

// GetWebConfig is the web service counterpart of [GetServerConfig].
func GetWebConfig(args []string) (*Holder, error) {
	return load(args, (*StructuredConfig).validateWeb)
}

func load(args []string, validate func(*StructuredConfig) error) (*Holder, error) {
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	flags, err := ParseFlags(fs, args)
	if err != nil {
		return nil, err
	}

	loader := newLoader(flags, validate)

	cfg, err := loader()
	if err != nil {
		return nil, err
	}

	return NewHolder(cfg, loader), nil
}

func newLoader(flags *StructuredConfig, validate func(*StructuredConfig) error) Loader {
	return func() (*StructuredConfig, error) {
		cfg, err := newConfigBuilder().
			withDefaults().
			withEnv().
			withFlags(flags).
			withJSON().
			build()
		if err != nil {
			return nil, err
		}

		if err = validate(cfg); err != nil {
			return nil, err
		}

		return cfg, nil
	}
}
