package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/filetidy/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. Mermaid chart support for the per-folder distribution
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format, including the
// per-file action table.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	summary := summaryOf(report)
	w.writeHeader(md, summary)
	w.writeTally(md, summary)
	w.writeActions(md, report)

	return len(md.String()), md.Build()
}

// WriteSummary outputs the summary in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeTally(md, summary)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.Summary) {
	md.H1("Filetidy Run Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Directory", "`" + summary.Root + "`"},
			{"Run ID", "`" + summary.RunID + "`"},
			{"Date", summary.DateRun.Format("2006-01-02 15:04:05 MST")},
			{"Status", statusText(summary)},
		},
	})
	md.PlainText("")
}

// statusText returns the status cell based on the summary state.
func statusText(summary *model.Summary) string {
	if summary.Aborted {
		return "Aborted - " + summary.AbortReason
	}
	if summary.DryRun {
		return "Dry run (no files were moved)"
	}
	return "Complete"
}

// writeTally writes the tally section with the per-folder distribution.
func (w *MarkdownWriter) writeTally(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Tally")
	md.PlainText("")

	moved := "Moved"
	if summary.DryRun {
		moved = "Planned"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{moved, strconv.Itoa(summary.MovedCount)},
			{"Skipped", strconv.Itoa(summary.SkippedCount)},
			{"**Total**", "**" + strconv.Itoa(summary.TotalFiles()) + "**"},
		},
	})
	md.PlainText("")

	if len(summary.FolderCounts) > 0 {
		w.writeFolderTable(md, summary)
		w.writePieChart(md, summary)
	}
}

// writeFolderTable writes the per-folder counts table.
func (w *MarkdownWriter) writeFolderTable(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Files per Destination Folder")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.FolderCounts))
	for _, fc := range summary.FolderCounts {
		rows = append(rows, []string{fc.Folder, strconv.Itoa(fc.Count)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Folder", "Files"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the folder distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Files per Destination Folder"),
		piechart.WithShowData(true),
	)

	for _, fc := range summary.FolderCounts {
		chart.LabelAndIntValue(fc.Folder, uint64(fc.Count)) //nolint:gosec // Counts are non-negative
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeActions writes the per-file action table.
func (w *MarkdownWriter) writeActions(md *markdown.Markdown, report *model.RunReport) {
	if len(report.Actions) == 0 {
		return
	}

	md.H2("Actions")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Actions))
	for _, a := range report.Actions {
		dest := ""
		if a.Folder != "" && a.DestName != "" {
			dest = a.Folder + "/" + a.DestName
		}
		rows = append(rows, []string{"`" + a.Source + "`", dest, a.Status.String(), a.Reason})
	}
	md.Table(markdown.TableSet{
		Header: []string{"File", "Destination", "Status", "Note"},
		Rows:   rows,
	})
	md.PlainText("")
}
