// Package version holds the build version, set at link time:
//
//	go build -ldflags "-X seguid/internal/version.Version=v1.2.0" ./cmd/seguid
package version

// Version is "dev" for untagged builds.
var Version = "dev"
