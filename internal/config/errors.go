package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyPath is returned when the target directory path is empty.
	ErrEmptyPath = errors.New("empty target path: provide a directory with --path")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptyCategoryName is returned when a configured category has an
	// empty name; the name becomes the destination folder, so it must be set.
	ErrEmptyCategoryName = errors.New("invalid category: name must not be empty")

	// ErrEmptyCategory is returned when a configured category lists no
	// extensions. An empty category can never match and indicates a typo.
	ErrEmptyCategory = errors.New("invalid category: at least one extension is required")

	// ErrEmptyExtension is returned when a configured category lists an
	// empty extension entry.
	ErrEmptyExtension = errors.New("invalid category: extensions must not be empty")
)
