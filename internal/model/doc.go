// Package model defines the core data structures used throughout filetidy.
//
// This package contains the following main types:
//   - Action: One directory entry considered during a run
//   - RunReport: The accumulated result of a single organizing pass
//   - Summary: A condensed, presentation-ready view of a RunReport
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. Both the pipeline and report packages need these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
// Nothing here persists beyond a single process invocation.
package model
