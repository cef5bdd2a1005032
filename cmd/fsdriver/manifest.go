package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"fsdriver/internal/argv"
)

type driverManifest struct {
	Path   string
	Root   string
	Config driverConfig
}

type driverConfig struct {
	Compiler compilerConfig `toml:"compiler"`
	Format   formatConfig   `toml:"format"`
}

type compilerConfig struct {
	// Executable is the launcher name expected at argv[0].
	Executable string `toml:"executable"`
}

type formatConfig struct {
	ErrorRanges bool `toml:"error_ranges"`
	VSErrors    bool `toml:"vs_errors"`
}

func findDriverToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "fsdriver.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadDriverManifest(startDir string) (*driverManifest, bool, error) {
	manifestPath, ok, err := findDriverToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg driverConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("failed to load %q: %w", manifestPath, err)
	}
	return &driverManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// applyFormatDefaults appends the manifest's default format switches to a
// command line unless the vector already carries them. The switches ride
// in the vector itself; the driver's scanner picks them up from there.
func applyFormatDefaults(commandLine string, cfg formatConfig) string {
	flags := argv.ScanFlags(argv.Split(commandLine))
	if cfg.ErrorRanges && !flags.ErrorRanges {
		commandLine += " /test:ErrorRanges"
	}
	if cfg.VSErrors && !flags.VSErrors {
		commandLine += " /vserrors"
	}
	return commandLine
}
