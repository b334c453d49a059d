package model

import (
	"sort"
	"time"
)

// Summary is a condensed, presentation-ready view of a RunReport.
//
// Design decision: We create a separate summary rather than just printing
// parts of RunReport because it separates presentation concerns from data
// collection, and it gives the writers one curated structure to render
// instead of each re-deriving per-folder counts.
type Summary struct {
	// RunID identifies the run this summary belongs to.
	RunID string `json:"run_id"`

	// Root is the directory the run operated on.
	Root string `json:"root"`

	// DateRun is when the run was performed.
	DateRun time.Time `json:"date_run"`

	// DryRun is true when no filesystem mutation occurred.
	DryRun bool `json:"dry_run"`

	// MovedCount and SkippedCount mirror the RunReport tally.
	MovedCount   int `json:"moved_count"`
	SkippedCount int `json:"skipped_count"`

	// FolderCounts lists how many files went to each destination folder,
	// largest first, ties broken by name.
	FolderCounts []FolderCount `json:"folder_counts,omitempty"`

	// FoldersCreated lists destination folders created during the run.
	FoldersCreated []string `json:"folders_created,omitempty"`

	// Aborted and AbortReason mirror the RunReport abort state.
	Aborted     bool   `json:"aborted,omitempty"`
	AbortReason string `json:"abort_reason,omitempty"`
}

// FolderCount is the number of files routed to one destination folder.
type FolderCount struct {
	// Folder is the destination folder name.
	Folder string `json:"folder"`

	// Count is the number of files moved (or planned) into it.
	Count int `json:"count"`
}

// NewSummary derives a Summary from a completed RunReport.
func NewSummary(r *RunReport) *Summary {
	s := &Summary{
		RunID:          r.RunID,
		Root:           r.Root,
		DateRun:        r.StartedAt,
		DryRun:         r.DryRun,
		MovedCount:     r.MovedCount,
		SkippedCount:   r.SkippedCount,
		FoldersCreated: r.FoldersCreated,
		Aborted:        r.Aborted,
		AbortReason:    r.AbortReason,
	}

	counts := make(map[string]int)
	for _, a := range r.Actions {
		if a.Status == StatusMoved || a.Status == StatusPlanned {
			counts[a.Folder]++
		}
	}

	s.FolderCounts = make([]FolderCount, 0, len(counts))
	for folder, count := range counts {
		s.FolderCounts = append(s.FolderCounts, FolderCount{Folder: folder, Count: count})
	}
	sort.Slice(s.FolderCounts, func(i, j int) bool {
		if s.FolderCounts[i].Count != s.FolderCounts[j].Count {
			return s.FolderCounts[i].Count > s.FolderCounts[j].Count
		}
		return s.FolderCounts[i].Folder < s.FolderCounts[j].Folder
	})

	return s
}

// TotalFiles returns the number of entries the run reported on.
func (s *Summary) TotalFiles() int {
	return s.MovedCount + s.SkippedCount
}
