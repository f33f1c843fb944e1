package cmd

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/westupdate/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

// printVersionOutput writes version, build and runtime information to w.
//
// The runtime platform is only shown when it differs from the build target.
func printVersionOutput(w io.Writer) {
	buildOS, buildArch := getBuildTarget()
	_, _ = fmt.Fprintf(w, "  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		_, _ = fmt.Fprintf(w, "  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	_, _ = fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		_, _ = fmt.Fprintf(w, "  Date:    %s\n", BuildTime)
	}
	if GitCommit != "" {
		_, _ = fmt.Fprintf(w, "  Git:     %s\n", GitCommit)
	}
	_, _ = fmt.Fprintf(w, "  Version: %s\n", Version)
}

// getBuildTarget returns the OS and architecture the binary was built for.
//
// Falls back to runtime values if build-time values weren't set (dev builds).
//
// Returns:
//   - string: Target operating system (e.g., "linux", "darwin", "windows")
//   - string: Target architecture (e.g., "amd64", "arm64")
func getBuildTarget() (string, string) {
	buildOS := BuildOS
	buildArch := BuildArch

	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}

	return buildOS, buildArch
}

// HasArchMismatch returns true if the binary was built for a different
// OS or architecture than what it's running on.
func HasArchMismatch() bool {
	if BuildOS == "" && BuildArch == "" {
		return false
	}

	buildOS, buildArch := getBuildTarget()
	return buildOS != runtime.GOOS || buildArch != runtime.GOARCH
}

// IsDevBuild returns true if this is a development build (no release tag).
func IsDevBuild() bool {
	return Version == "dev"
}

// IsPrerelease returns true if this is a release candidate built from the
// stage branch (versions of the form _stage-YYYYMMDD-rcN).
func IsPrerelease() bool {
	return strings.HasPrefix(Version, "_stage-")
}

// GetBuildWarnings returns all build-related warnings combined.
//
// Aggregates warnings for an architecture mismatch, a dev build and a
// prerelease version. Each warning ends in a newline.
//
// Returns:
//   - string: Combined warning messages; empty string if no warnings
func GetBuildWarnings() string {
	var b strings.Builder

	if HasArchMismatch() {
		buildOS, buildArch := getBuildTarget()
		fmt.Fprintf(&b, "Warning: binary built for %s/%s but running on %s/%s\n",
			buildOS, buildArch, runtime.GOOS, runtime.GOARCH)
	}

	if IsDevBuild() {
		b.WriteString("Warning: development build without a version tag\n")
	}

	if IsPrerelease() {
		fmt.Fprintf(&b, "Warning: staging build %s is a release candidate, not for production pipelines\n", Version)
	}

	return b.String()
}
