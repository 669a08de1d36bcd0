// Package version tells which build of nbm is running.
package version

import "runtime/debug"

// Version can be set at build time with something like:
// go build -ldflags "-X github.com/nbmusic/nbm/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with "-dirty"
// appended if the work tree had local changes, or empty if unknown.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	revision := vcsSetting(info, "vcs.revision")
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && vcsSetting(info, "vcs.modified") == "true" {
		revision += "-dirty"
	}
	return revision
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	if Hash != "" {
		return Hash
	}
	return "(devel)"
}()

func vcsSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}
