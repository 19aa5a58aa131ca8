// internal/version/version.go
package version

// Version is set at release time.
const Version = "0.1.0"
