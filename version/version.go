// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/Abhisg5/snakeAPI/version.Version=...".
package version

// Version of the service.
var Version = "1.0.0"
