package core

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is the build's version string, resolved once at startup: the
// module version for tagged builds, otherwise a short VCS revision.
var Version = resolveVersion()

func resolveVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "devel"
	}

	short := revision
	if len(short) > 7 {
		short = short[:7]
	}
	v := fmt.Sprintf("devel-%s", short)
	if dirty {
		v += "-dirty"
	}
	return v
}

// FormatVersion strips the "v" prefix from tagged releases for display;
// devel versions pass through as-is.
func FormatVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}
