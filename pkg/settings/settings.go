// Package settings provides build metadata, runtime configuration, and
// context helpers used across the tabula CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "tabula"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string `json:"commit" yaml:"commit"`
	BuildVersion string `json:"version" yaml:"version"`
	BuildTime    string `json:"buildTime" yaml:"buildTime"`
}

// InputSettings describes where table data is read from.
type InputSettings struct {
	FromStdin bool
	Path      string
	Format    string
}

// Run holds configuration settings for a single execution of the application.
type Run struct {
	MinLogLevel int8
	Input       InputSettings
	ConfigPath  string
	NoColor     bool
	ForceNoTTY  bool
	ExitOnError bool
}

// NewCliParams returns the settings of a CLI run reading stdin with format
// detection, color enabled and exit-on-error set.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Input: InputSettings{
			FromStdin: true,
			Format:    "auto",
		},
		ExitOnError: true,
	}
}
