// Package version holds the build version stamped in at release time.
package version

import "fmt"

// Version is set via -ldflags at build time.
var Version = "dev"

// Info returns the human-readable version string.
func Info() string {
	return fmt.Sprintf("contact-api %s", Version)
}
