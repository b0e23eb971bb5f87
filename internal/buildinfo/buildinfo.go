// Package buildinfo carries version metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/katalvlaran/dfafactor/internal/buildinfo.Version=v1.0.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("dfafactor %s (commit=%s, date=%s)", Version, Commit, Date)
}
