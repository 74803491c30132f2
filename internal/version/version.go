// Package version carries the build version string.
package version

// Version is overridden at release time via
// -ldflags "-X github.com/emberforge/emberforge/internal/version.Version=...".
var Version = "0.1.0-dev"
