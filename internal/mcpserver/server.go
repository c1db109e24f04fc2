// Package mcpserver exposes the public-API documentation metric over the
// Model Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"cxxdoc/internal/diagfmt"
	"cxxdoc/internal/driver"
	"cxxdoc/internal/project"
	"cxxdoc/internal/publicapi"
	"cxxdoc/internal/version"
)

// maxListed bounds the undocumented items returned by one coverage call.
const maxListed = 500

// Server wraps the MCP server and connects it to the analysis driver.
type Server struct {
	mcp   *mcp.Server
	cfg   project.Config
	root  string
	cache *driver.DiskCache
}

// New creates a server. Relative tool paths are resolved against root;
// cache may be nil.
func New(cfg project.Config, root string, cache *driver.DiskCache) *Server {
	s := &Server{
		cfg:   cfg,
		root:  root,
		cache: cache,
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "cxxdoc",
		Version: version.Version,
	}, nil)
	s.registerTools()
	return s
}

// Run serves on the stdio transport until ctx is done or the client leaves.
func (s *Server) Run(ctx context.Context) error {
	log.Println("[mcp] starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// coverageArgs are the arguments for the public_api_coverage tool.
type coverageArgs struct {
	Paths            []string `json:"paths,omitempty" jsonschema:"Header files or directories to analyze. Defaults to the project root."`
	IncludeProtected *bool    `json:"include_protected,omitempty" jsonschema:"Count protected members as public API. Defaults to the project configuration."`
}

// scanHeaderArgs are the arguments for the scan_header tool.
type scanHeaderArgs struct {
	Path string `json:"path" jsonschema:"required,Path of the header file to analyze"`
}

// UndocumentedItem is one entry of the coverage answer.
type UndocumentedItem struct {
	File string `json:"file"`
	Line uint32 `json:"line"`
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// CoverageResult is the JSON payload of public_api_coverage.
type CoverageResult struct {
	Summary      diagfmt.SummaryJSON `json:"summary"`
	Undocumented []UndocumentedItem  `json:"undocumented"`
	PartialFiles []string            `json:"partial_files,omitempty"`
	Truncated    bool                `json:"truncated,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "public_api_coverage",
		Description: "Measure documentation coverage of the public API of C++ headers. Returns the summary and every undocumented item as JSON.",
	}, s.coverage)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "scan_header",
		Description: "Analyze one C++ header and return its public API items, their documentation state and diagnostics as JSON.",
	}, s.scanHeader)
}

func (s *Server) coverage(ctx context.Context, _ *mcp.CallToolRequest, args coverageArgs) (*mcp.CallToolResult, any, error) {
	paths := make([]string, 0, max(len(args.Paths), 1))
	for _, p := range args.Paths {
		paths = append(paths, s.resolve(p))
	}
	if len(paths) == 0 {
		paths = append(paths, s.resolve("."))
	}

	disc, opts := s.options()
	if args.IncludeProtected != nil {
		opts.Policy.IncludeProtected = *args.IncludeProtected
	}

	res, err := driver.AnalyzePaths(ctx, paths, disc, opts)
	if err != nil {
		return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil, nil
	}
	log.Printf("[mcp] public_api_coverage: %d files, %d/%d documented", res.Summary.Files, res.Summary.Documented, res.Summary.Total)

	out := CoverageResult{
		Summary:      diagfmt.BuildReportOutput(res).Summary,
		Undocumented: []UndocumentedItem{},
	}
	for _, f := range res.Files {
		if f.Report.Partial {
			out.PartialFiles = append(out.PartialFiles, s.display(f.Report.File))
		}
		for _, it := range f.Report.Undocumented() {
			if len(out.Undocumented) == maxListed {
				out.Truncated = true
				break
			}
			out.Undocumented = append(out.Undocumented, UndocumentedItem{
				File: s.display(f.Report.File),
				Line: it.Line,
				Kind: it.Kind,
				Name: it.Name,
			})
		}
	}
	return jsonResult(out)
}

func (s *Server) scanHeader(ctx context.Context, _ *mcp.CallToolRequest, args scanHeaderArgs) (*mcp.CallToolResult, any, error) {
	if args.Path == "" {
		return errorResult("path is required"), nil, nil
	}
	_, opts := s.options()
	res, err := driver.AnalyzeFiles(ctx, []string{s.resolve(args.Path)}, opts)
	if err != nil {
		return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil, nil
	}
	rep := res.Files[0].Report
	rep.File = s.display(rep.File)
	log.Printf("[mcp] scan_header %s: %d/%d documented", rep.File, rep.Documented, rep.Total)
	return jsonResult(scanResult{Report: rep, Coverage: rep.Coverage()})
}

type scanResult struct {
	publicapi.Report
	Coverage float64 `json:"coverage"`
}

func (s *Server) options() (driver.DiscoverOptions, driver.Options) {
	disc, opts := driver.FromConfig(s.cfg)
	opts.Cache = s.cache
	return disc, opts
}

func (s *Server) resolve(p string) string {
	if filepath.IsAbs(p) || s.root == "" {
		return p
	}
	return filepath.Join(s.root, p)
}

// display shows paths under root relative to it.
func (s *Server) display(p string) string {
	if s.root == "" {
		return p
	}
	if rel, err := filepath.Rel(s.root, p); err == nil && filepath.IsLocal(rel) {
		return filepath.ToSlash(rel)
	}
	return p
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("failed to marshal result: %v", err)), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
