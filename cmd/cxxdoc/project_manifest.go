package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cxxdoc/internal/project"
)

// loadManifest reads --config or the nearest cxxdoc.toml and applies the
// global flags that override it.
func loadManifest(cmd *cobra.Command) (*project.Manifest, error) {
	pf := cmd.Root().PersistentFlags()
	configPath, err := pf.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var m *project.Manifest
	if configPath != "" {
		m, _, err = project.LoadManifestFile(configPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		m, _, err = project.LoadManifest(wd)
	}
	if err != nil {
		return nil, err
	}

	if pf.Changed("max-diagnostics") {
		n, err := pf.GetInt("max-diagnostics")
		if err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		m.Config.Run.MaxDiagnostics = n
	}
	if err := m.Config.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
