package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "filetidy"

	// DefaultConfigFile is the default configuration file name, searched
	// in the current directory and the user's home directory.
	DefaultConfigFile = ".filetidy.yaml"

	// FallbackDownloadsDir is used when the platform exposes no download
	// directory; the leading "~" is expanded at run time.
	FallbackDownloadsDir = "~/Downloads"
)

// Config holds all options for one organizing run.
// This struct is designed to be populated from CLI flags and passed
// through the application via dependency injection rather than global
// state. It is constructed once per invocation and never mutated after
// validation.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Path is the target directory to organize. A leading "~" is
	// expanded when the run starts.
	Path string

	// UseCategories selects category-table lookup. When false the
	// destination folder for every file is its uppercased extension.
	UseCategories bool

	// DryRun reports planned actions without mutating the filesystem.
	DryRun bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, per-file skip messages are suppressed.
	Verbose bool

	// JSONReport enables JSON report output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the run report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the usual locations; see FindConfigFile.
	ConfigFilePath string

	// Categories holds user-defined category entries loaded from the
	// configuration file. They are merged over the built-in table.
	Categories map[string][]string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (the target path,
// category mode). This also serves as documentation of what the
// defaults are.
func NewConfig() *Config {
	return &Config{
		Path:          DefaultDownloadsDir(),
		UseCategories: true,
	}
}

// DefaultDownloadsDir returns the platform-appropriate downloads
// directory. It prefers the XDG user directory (which follows the
// platform convention on Linux, macOS, and Windows) and falls back to
// "~/Downloads" when the platform exposes none.
func DefaultDownloadsDir() string {
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	return FallbackDownloadsDir
}

// XDGConfigDir returns the XDG config directory for filetidy.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/filetidy
// On macOS: ~/Library/Application Support/filetidy
// On Windows: %APPDATA%\filetidy
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before the run begins.
// The target path's existence is deliberately NOT checked here: a
// missing directory is a reportable run outcome, not a usage error.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	for name, exts := range c.Categories {
		if name == "" {
			return ErrEmptyCategoryName
		}
		if len(exts) == 0 {
			return ErrEmptyCategory
		}
		for _, ext := range exts {
			if ext == "" || ext == "." {
				return ErrEmptyExtension
			}
		}
	}

	return nil
}
