package buildinfo

import (
	"runtime/debug"
	"time"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags, in RFC 3339 form.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Time returns Date as a time. When Date is unset or malformed it falls back to
// the commit time the go command stamps into the binary (vcs.time), and to the
// zero time when neither is available.
func Time() time.Time {
	if t, err := time.Parse(time.RFC3339, Date); err == nil {
		return t
	}
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return time.Time{}
	}
	for _, s := range info.Settings {
		if s.Key != "vcs.time" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
			return t
		}
	}
	return time.Time{}
}
