package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"cxxdoc/internal/project"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "include/a.h", "/// doc\nvoid f();\nvoid g();\n")
	writeFile(t, root, "include/b.hpp", "class C {\nprotected:\n  int p;\n};\n")
	writeFile(t, root, "src/a.cpp", "void hidden();\n")
	return New(project.Default(), root, nil), root
}

func TestCoverageTool(t *testing.T) {
	s, _ := newTestServer(t)

	res, _, err := s.coverage(context.Background(), nil, coverageArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}

	var out CoverageResult
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Summary.Files != 2 {
		t.Errorf("files = %d, want 2 (sources are not headers)", out.Summary.Files)
	}
	if out.Summary.Total != 4 || out.Summary.Documented != 1 {
		t.Errorf("summary = %+v", out.Summary)
	}

	var names []string
	for _, it := range out.Undocumented {
		names = append(names, it.File+":"+it.Name)
	}
	got := strings.Join(names, ",")
	want := "include/a.h:g,include/b.hpp:C,include/b.hpp:p"
	if got != want {
		t.Errorf("undocumented = %s, want %s", got, want)
	}
}

func TestCoverageToolWithoutProtected(t *testing.T) {
	s, _ := newTestServer(t)
	off := false

	res, _, err := s.coverage(context.Background(), nil, coverageArgs{Paths: []string{"include/b.hpp"}, IncludeProtected: &off})
	if err != nil {
		t.Fatal(err)
	}
	var out CoverageResult
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Summary.Total != 1 {
		t.Errorf("total = %d, want 1 (protected field excluded)", out.Summary.Total)
	}
}

func TestCoverageToolMissingPath(t *testing.T) {
	s, _ := newTestServer(t)
	res, _, err := s.coverage(context.Background(), nil, coverageArgs{Paths: []string{"nope"}})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected tool error for a missing path")
	}
}

func TestScanHeaderTool(t *testing.T) {
	s, _ := newTestServer(t)

	res, _, err := s.scanHeader(context.Background(), nil, scanHeaderArgs{Path: "include/a.h"})
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		File     string  `json:"file"`
		Total    int     `json:"total"`
		Coverage float64 `json:"coverage"`
		Items    []struct {
			Name       string `json:"name"`
			Documented bool   `json:"documented"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.File != "include/a.h" || out.Total != 2 || out.Coverage != 50 {
		t.Errorf("unexpected report %+v", out)
	}
	if len(out.Items) != 2 || !out.Items[0].Documented || out.Items[1].Documented {
		t.Errorf("unexpected items %+v", out.Items)
	}

	res, _, _ = s.scanHeader(context.Background(), nil, scanHeaderArgs{})
	if !res.IsError {
		t.Error("empty path must be a tool error")
	}
}

func TestScanHeaderUnreadable(t *testing.T) {
	s, _ := newTestServer(t)
	res, _, err := s.scanHeader(context.Background(), nil, scanHeaderArgs{Path: "include/missing.h"})
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "IO4001") || !strings.Contains(text, `"partial": true`) {
		t.Errorf("expected partial IO report, got:\n%s", text)
	}
}
