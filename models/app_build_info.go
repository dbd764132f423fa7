package models

import "fmt"

// unknownBuildValue stands in for metadata the linker did not set.
const unknownBuildValue = "N/A"

// AppBuildInfo is the build metadata stamped into a binary with -ldflags.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills empty values with N/A.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// Known reports whether a version was stamped at build time.
func (a AppBuildInfo) Known() bool {
	return a.Version != unknownBuildValue
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.Version, a.Date, a.Commit)
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}
