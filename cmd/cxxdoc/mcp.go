package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cxxdoc/internal/driver"
	"cxxdoc/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the analysis over the Model Context Protocol (stdio)",
	Long: `Mcp starts an MCP server on stdin/stdout exposing the public_api_coverage
and scan_header tools. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().String("root", "", "directory relative tool paths are resolved against (default: project root or working directory)")
}

func runMCP(cmd *cobra.Command, _ []string) error {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("failed to get root flag: %w", err)
	}
	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	if root == "" {
		root = m.Root
	}
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	// stdout занят протоколом
	log.SetOutput(os.Stderr)

	var cache *driver.DiskCache
	if m.Config.Cache.Enabled {
		if cache, err = driver.OpenDiskCache(m.Config.Cache.Dir, appName); err != nil {
			log.Printf("[mcp] cache disabled: %v", err)
			cache = nil
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.New(m.Config, root, cache).Run(ctx)
}
