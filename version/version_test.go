package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version = "dev"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion failed: expected dev, got %s", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2025-01-01"
	expected := "1.2.0 (abc123, 2025-01-01)"
	if got := GetFullVersion(); got != expected {
		t.Errorf("GetFullVersion failed: expected %s, got %s", expected, got)
	}
}
