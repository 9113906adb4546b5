// Package version holds the build version, overridable with
// -ldflags "-X fxtools/internal/version.Version=...".
package version

var Version = "0.3.0"
