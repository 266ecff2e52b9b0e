// Package build holds the values stamped into the binary at link time.
package build

var (
	// Version is the released version of the binary.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)
