package commands

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags "-X github.com/petal-labs/aidraw/cli/commands.Version=v1.0.0"
var (
	// Version is the semantic version of the CLI.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// versionText is printed by --version. cobra runs it through text/template,
// so braces in the build values are escaped.
func versionText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "aidraw %s\n", Version)
	fmt.Fprintf(&b, "  commit:     %s\n", Commit)
	fmt.Fprintf(&b, "  built:      %s\n", BuildDate)
	fmt.Fprintf(&b, "  go version: %s\n", runtime.Version())
	fmt.Fprintf(&b, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return strings.ReplaceAll(b.String(), "{{", `{{"{{"}}`)
}
