package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate, origNoColor := Version, GitCommit, BuildDate, color.NoColor
	Version, GitCommit, BuildDate = v, commit, date
	color.NoColor = true
	t.Cleanup(func() {
		Version, GitCommit, BuildDate, color.NoColor = origVersion, origCommit, origDate, origNoColor
	})
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"0.1.0-dev", "0.1.0-dev"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		withVersion(t, tt.in, "", "")
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() for %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInfo(t *testing.T) {
	withVersion(t, "1.2.3", "abc123def456", "2024-01-15T10:30:00Z")
	info := Info()
	for _, want := range []string{"cxxdoc 1.2.3\n", "commit: abc123def456\n", "built: 2024-01-15T10:30:00Z\n"} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() lacks %q:\n%s", want, info)
		}
	}

	withVersion(t, "1.2.3", "", "")
	if got := Info(); got != "cxxdoc 1.2.3\n" {
		t.Errorf("Info() without metadata = %q", got)
	}
}
