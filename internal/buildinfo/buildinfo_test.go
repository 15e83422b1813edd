package buildinfo

import (
	"runtime/debug"
	"testing"
	"time"
)

func swap(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestShort(t *testing.T) {
	tests := []struct {
		version, commit, want string
	}{
		{"v1.2.0", "abc123", "v1.2.0"},
		{"dev", "abc123", "abc123"},
		{"dev", "unknown", "dev"},
		{"", "", "dev"},
	}
	for _, tt := range tests {
		swap(t, tt.version, tt.commit, "unknown")
		if got := Short(); got != tt.want {
			t.Fatalf("Short() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestTime(t *testing.T) {
	swap(t, "dev", "unknown", "2026-10-01T12:30:00Z")
	want := time.Date(2026, time.October, 1, 12, 30, 0, 0, time.UTC)
	if got := Time(); !got.Equal(want) {
		t.Fatalf("Time() = %v, want %v", got, want)
	}
}

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	prev := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = prev })
}

func TestTimeFallsBackToVCSTime(t *testing.T) {
	swap(t, "dev", "unknown", "unknown")
	stubBuildInfo(t, &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.time", Value: "2026-09-14T08:00:00Z"},
	}}, true)

	want := time.Date(2026, time.September, 14, 8, 0, 0, 0, time.UTC)
	if got := Time(); !got.Equal(want) {
		t.Fatalf("Time() = %v, want vcs.time %v", got, want)
	}
}

func TestTimeWithoutAnySource(t *testing.T) {
	swap(t, "dev", "unknown", "unknown")
	stubBuildInfo(t, &debug.BuildInfo{}, true)
	if got := Time(); !got.IsZero() {
		t.Fatalf("Time() = %v without vcs.time, want zero", got)
	}

	stubBuildInfo(t, nil, false)
	if got := Time(); !got.IsZero() {
		t.Fatalf("Time() = %v without build info, want zero", got)
	}
}
