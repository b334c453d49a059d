package model

// ActionStatus represents the outcome of processing one directory entry.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides
// human-readable output when needed.
type ActionStatus int

const (
	// StatusMoved indicates the file was relocated to its destination folder.
	StatusMoved ActionStatus = iota

	// StatusPlanned indicates a dry run: the move was resolved and reported
	// but no filesystem mutation occurred.
	StatusPlanned

	// StatusSkipped indicates the entry was counted but not moved,
	// typically because its name carries no extension.
	StatusSkipped

	// StatusFailed indicates the move was attempted and failed.
	// A failed entry counts as skipped in the final tally; it never
	// aborts the run.
	StatusFailed
)

// String returns a human-readable representation of the action status.
func (s ActionStatus) String() string {
	switch s {
	case StatusMoved:
		return "MOVED"
	case StatusPlanned:
		return "PLANNED"
	case StatusSkipped:
		return "SKIPPED"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Action records what happened to a single directory entry.
// An Action exists only for entries the run reports on; directories and
// other non-regular entries pass through silently and leave no Action.
type Action struct {
	// Source is the original file name (base name, not the full path).
	Source string `json:"source"`

	// Folder is the resolved destination folder name, empty for skips.
	Folder string `json:"folder,omitempty"`

	// DestName is the final file name inside the destination folder.
	// It differs from Source when collision resolution appended a counter.
	DestName string `json:"dest_name,omitempty"`

	// Renamed is true when collision resolution changed the file name.
	Renamed bool `json:"renamed,omitempty"`

	// Status is the outcome for this entry.
	Status ActionStatus `json:"status"`

	// StatusText is the human-readable status, kept alongside the numeric
	// value so JSON consumers need no mapping table.
	StatusText string `json:"status_text"`

	// Reason carries the skip reason or move error text, if any.
	Reason string `json:"reason,omitempty"`
}
