// Package fsdb holds application-wide metadata.
package fsdb

var (
	// Version is set by the build via ldflags.
	Version = "v0.1.0+dev"

	// Build is the timestamp of the binary build.
	Build = "n/a"
)
