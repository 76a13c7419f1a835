package version

import (
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
	})
}

func TestStringDevBuild(t *testing.T) {
	withBuildInfo(t, "dev", "unknown", "unknown")

	got := String()
	if !strings.HasPrefix(got, "contrastfix version dev (") {
		t.Errorf("String() = %q", got)
	}
	if strings.Contains(got, "commit:") {
		t.Errorf("dev build should not report a commit: %q", got)
	}
}

func TestStringRelease(t *testing.T) {
	withBuildInfo(t, "1.2.0", "0123456789abcdef", "2025-01-02T03:04:05Z")

	got := String()
	if !strings.Contains(got, "commit: 01234567,") {
		t.Errorf("String() = %q, want abbreviated commit", got)
	}
	if !strings.Contains(got, "built: 2025-01-02T03:04:05Z") {
		t.Errorf("String() = %q, want build date", got)
	}
}

func TestShortCommit(t *testing.T) {
	tests := []struct {
		commit string
		want   string
	}{
		{"0123456789abcdef", "01234567"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := (Info{Commit: tt.commit}).ShortCommit(); got != tt.want {
			t.Errorf("ShortCommit(%q) = %q, want %q", tt.commit, got, tt.want)
		}
	}
}
