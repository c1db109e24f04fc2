package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T) (dir, config string) {
	t.Helper()
	dir = t.TempDir()
	files := map[string]string{
		"cxxdoc.toml":  "[cache]\nenabled = false\n",
		"include/a.h":  "/// doc\nvoid f();\nvoid g();\n",
		"include/b.hh": "class B {\nprotected:\n  /// doc\n  int p;\n};\n",
		"src/main.cpp": "int main();\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir, filepath.Join(dir, "cxxdoc.toml")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	abortSession(err)
	return out.String(), err
}

func TestAnalyzeIssues(t *testing.T) {
	dir, config := writeProject(t)
	out, err := execute(t, "--config", config, "analyze", "--format", "issues", "--ui", "off", "--no-protected=false", "--fail-under", "0", filepath.Join(dir, "include"))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	want := filepath.Join(dir, "include", "a.h") + ":3: Undocumented API: g\n" +
		filepath.Join(dir, "include", "b.hh") + ":1: Undocumented API: B\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestAnalyzeFailUnder(t *testing.T) {
	dir, config := writeProject(t)
	_, err := execute(t, "--config", config, "analyze", "--format", "json", "--ui", "off", "--no-protected=false", "--fail-under", "90", dir)
	var ee *exitError
	if !errors.As(err, &ee) || ee.code != 3 {
		t.Fatalf("expected exit code 3, got %v", err)
	}
	if !strings.Contains(err.Error(), "50.00%") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestAnalyzeRejectsBadFormat(t *testing.T) {
	dir, config := writeProject(t)
	if _, err := execute(t, "--config", config, "analyze", "--format", "xml", "--ui", "off", "--fail-under", "0", dir); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestScanJSON(t *testing.T) {
	dir, config := writeProject(t)
	out, err := execute(t, "--config", config, "scan", "--format", "json", "--no-protected=false", filepath.Join(dir, "include", "b.hh"))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	for _, want := range []string{`"name": "B"`, `"name": "p"`, `"visibility": "protected"`, `"doc_line": 3`} {
		if !strings.Contains(out, want) {
			t.Errorf("scan output lacks %s:\n%s", want, out)
		}
	}
}

func TestTokenizePretty(t *testing.T) {
	dir, config := writeProject(t)
	out, err := execute(t, "--config", config, "tokenize", "--format", "pretty", "--diagnostics", "pretty", filepath.Join(dir, "include", "a.h"))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if !strings.Contains(out, `"/// doc"  [doc-line LEADING]`) {
		t.Errorf("tokenize output lacks the doc comment:\n%s", out)
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Error("expected error for an invalid mode")
	}
	if !shouldUseTUI(uiModeOn, "json") || shouldUseTUI(uiModeOff, "pretty") {
		t.Error("explicit modes must win over the format")
	}
	if shouldUseTUI(uiModeAuto, "json") {
		t.Error("auto mode must not animate machine formats")
	}
}

func TestTokenizeShortDiagnostics(t *testing.T) {
	dir, config := writeProject(t)
	path := filepath.Join(dir, "include", "broken.h")
	if err := os.WriteFile(path, []byte("int x; /* open\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", config, "tokenize", "--format", "pretty", "--diagnostics", "short", path})
	err := rootCmd.Execute()
	abortSession(err)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if got := errOut.String(); !strings.Contains(got, "error LEX1003 ") || !strings.Contains(got, "broken.h:1:8 ") {
		t.Errorf("unexpected short diagnostics %q", got)
	}
}

func TestCleanDropsCache(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	config := filepath.Join(dir, "cxxdoc.toml")
	if err := os.WriteFile(config, []byte("[cache]\nenabled = true\ndir = \""+filepath.ToSlash(cacheDir)+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(cacheDir, "stale.mp")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--config", config, "clean")
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !strings.HasPrefix(out, "removed cache ") {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale entry survived: %v", err)
	}
}
