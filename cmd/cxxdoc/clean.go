package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cxxdoc/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove cached per-file reports",
	Long:  "Clean drops the on-disk report cache configured by [cache] in cxxdoc.toml.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	cache, err := driver.OpenDiskCache(m.Config.Cache.Dir, appName)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clean %q: %w", cache.Dir(), err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed cache %s\n", cache.Dir())
	return nil
}
