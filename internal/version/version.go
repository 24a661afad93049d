// Package version holds the claw release version.
package version

// Version is the current release, overridable at link time with
// -ldflags "-X claw/internal/version.Version=...".
var Version = "0.1.0"
