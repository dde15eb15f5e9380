// Package app defines common runtime contracts shared by the executable
// entrypoints (API server, cache migration runner).
package app

// Version is reported by the health endpoint. Overridden at build time with
// -ldflags "-X github.com/rwadex/rwa-dex-api/pkg/app.Version=...".
var Version = "1.0.0"

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
