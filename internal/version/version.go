// Package version carries the build version, set at link time with
// -ldflags "-X ngsio/internal/version.Version=v1.2.3".
package version

var Version = "dev"
