package model

import (
	"time"

	"github.com/google/uuid"
)

// RunReport is the accumulated result of a single organizing pass.
// It is built up entry by entry while the pipeline runs and discarded
// once reported; no run state survives the process.
type RunReport struct {
	// RunID uniquely identifies this run in log output and reports.
	RunID string `json:"run_id"`

	// Root is the resolved directory the run operated on.
	Root string `json:"root"`

	// DryRun is true when the run simulated moves without mutating
	// the filesystem.
	DryRun bool `json:"dry_run"`

	// UseCategories is true when the category table was consulted;
	// false means every destination folder is an uppercased extension.
	UseCategories bool `json:"use_categories"`

	// StartedAt is the timestamp when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total wall-clock time of the run.
	Duration time.Duration `json:"duration"`

	// Actions lists every reported entry in processing order.
	// The order follows directory enumeration and is not sorted.
	Actions []Action `json:"actions,omitempty"`

	// MovedCount is the number of files moved (or planned, in a dry run).
	MovedCount int `json:"moved_count"`

	// SkippedCount is the number of files skipped: extensionless entries
	// plus entries whose move failed.
	SkippedCount int `json:"skipped_count"`

	// FoldersCreated lists destination folders created during the run,
	// in creation order. Always empty for dry runs.
	FoldersCreated []string `json:"folders_created,omitempty"`

	// Aborted is true when the run stopped before scanning any entries,
	// e.g. because the target path does not exist or is not a directory.
	Aborted bool `json:"aborted,omitempty"`

	// AbortReason describes why the run aborted, empty otherwise.
	AbortReason string `json:"abort_reason,omitempty"`

	// Summary is the condensed view generated after the run completes.
	Summary *Summary `json:"summary,omitempty"`
}

// NewRunReport creates a RunReport for a run over root.
func NewRunReport(root string, dryRun, useCategories bool) *RunReport {
	return &RunReport{
		RunID:         uuid.NewString(),
		Root:          root,
		DryRun:        dryRun,
		UseCategories: useCategories,
		StartedAt:     time.Now(),
	}
}

// AddAction appends an action and updates the tally counters.
// Moved and planned entries count as moved; skipped and failed entries
// count as skipped.
func (r *RunReport) AddAction(a Action) {
	a.StatusText = a.Status.String()
	r.Actions = append(r.Actions, a)

	switch a.Status {
	case StatusMoved, StatusPlanned:
		r.MovedCount++
	case StatusSkipped, StatusFailed:
		r.SkippedCount++
	}
}

// AddCreatedFolder records that a destination folder was created.
func (r *RunReport) AddCreatedFolder(name string) {
	r.FoldersCreated = append(r.FoldersCreated, name)
}

// MarkAborted marks the run as aborted before any entry was processed.
func (r *RunReport) MarkAborted(reason string) {
	r.Aborted = true
	r.AbortReason = reason
}

// Finish records the run duration.
func (r *RunReport) Finish() {
	r.Duration = time.Since(r.StartedAt)
}
