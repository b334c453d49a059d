package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/nao1215/filetidy/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display: the per-folder tally is
// rendered as a rounded table when the output is a terminal, and as plain
// pipe-friendly lines otherwise.
type SimpleWriter struct {
	baseWriter

	// styledTable renders the per-folder tally with go-pretty.
	// Autodetected from the output destination, overridable for tests.
	styledTable bool

	// verbose enables the per-file action listing in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output listing every reported action.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithStyledTable overrides terminal autodetection for the tally table.
func WithStyledTable(styled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.styledTable = styled
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:  newBaseWriter(output),
		styledTable: isTerminal(output),
		verbose:     false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// isTerminal reports whether output is an interactive terminal.
func isTerminal(output io.Writer) bool {
	f, ok := output.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Write outputs the full report in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	n, err := w.WriteSummary(summaryOf(report))
	if err != nil || !w.verbose || len(report.Actions) == 0 {
		return n, err
	}

	var sb strings.Builder
	sb.WriteString("Actions:\n")
	for _, a := range report.Actions {
		switch a.Status {
		case model.StatusMoved, model.StatusPlanned:
			fmt.Fprintf(&sb, "  [%s] %s -> %s/%s\n", a.Status, a.Source, a.Folder, a.DestName)
		default:
			fmt.Fprintf(&sb, "  [%s] %s (%s)\n", a.Status, a.Source, a.Reason)
		}
	}
	sb.WriteString("\n")

	m, err := w.output.Write([]byte(sb.String()))
	return n + m, err
}

// WriteSummary outputs the summary in human-readable format.
func (w *SimpleWriter) WriteSummary(summary *model.Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeTally(&sb, summary)
	w.writeFolders(&sb, summary)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, summary *model.Summary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         FILETIDY RUN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Directory: %s\n", summary.Root))
	sb.WriteString(fmt.Sprintf("Run ID:    %s\n", summary.RunID))
	sb.WriteString(fmt.Sprintf("Date:      %s\n", summary.DateRun.Format("2006-01-02 15:04:05 MST")))

	if summary.Aborted {
		sb.WriteString(fmt.Sprintf("Status:    ABORTED - %s\n", summary.AbortReason))
	} else if summary.DryRun {
		sb.WriteString("Status:    Dry run (no files were moved)\n")
	} else {
		sb.WriteString("Status:    Complete\n")
	}

	sb.WriteString("\n")
}

// writeTally writes the moved/skipped counters.
func (w *SimpleWriter) writeTally(sb *strings.Builder, summary *model.Summary) {
	verb := "moved"
	if summary.DryRun {
		verb = "planned"
	}
	sb.WriteString(fmt.Sprintf("%d files %s, %d skipped\n", summary.MovedCount, verb, summary.SkippedCount))

	if len(summary.FoldersCreated) > 0 {
		sb.WriteString(fmt.Sprintf("Folders created: %s\n", strings.Join(summary.FoldersCreated, ", ")))
	}
	sb.WriteString("\n")
}

// writeFolders writes the per-folder tally, styled or plain.
func (w *SimpleWriter) writeFolders(sb *strings.Builder, summary *model.Summary) {
	if len(summary.FolderCounts) == 0 {
		return
	}

	if w.styledTable {
		sb.WriteString(renderFolderTable(summary.FolderCounts))
		sb.WriteString("\n\n")
		return
	}

	for _, fc := range summary.FolderCounts {
		sb.WriteString(fmt.Sprintf("  %-24s %d\n", fc.Folder, fc.Count))
	}
	sb.WriteString("\n")
}

// renderFolderTable renders the per-folder counts as a rounded table.
func renderFolderTable(counts []model.FolderCount) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Folder", "Files"})

	for _, fc := range counts {
		tw.AppendRow(table.Row{fc.Folder, strconv.Itoa(fc.Count)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
