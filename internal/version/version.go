package version

import (
	"bytes"
	_ "embed"
	"runtime/debug"
)

//go:embed version.txt
var versionBytes []byte

// Version returns the release version, followed by the VCS revision if the binary was built from a checkout.
func Version() string {
	v := string(bytes.TrimSpace(versionBytes))
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return v + "+" + s.Value[:12]
		}
	}
	return v
}
