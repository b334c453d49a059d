package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/filetidy/internal/category"
	"github.com/nao1215/filetidy/internal/fsx"
	"github.com/nao1215/filetidy/internal/model"
)

// ResolvePathStep validates the target directory before any entry is
// touched. It expands a leading home-directory shorthand and verifies the
// result exists and is a directory. A failed check marks the run aborted
// with a zero tally; it never surfaces as an error to the caller.
type ResolvePathStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// ResolvePathStepOption configures a ResolvePathStep.
type ResolvePathStepOption func(*ResolvePathStep)

// WithResolveLogger sets a custom logger for the resolve step.
func WithResolveLogger(logger *slog.Logger) ResolvePathStepOption {
	return func(s *ResolvePathStep) {
		s.logger = logger
	}
}

// NewResolvePathStep creates a new path validation step.
func NewResolvePathStep(opts ...ResolvePathStepOption) *ResolvePathStep {
	s := &ResolvePathStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ResolvePathStep) Name() string {
	return "resolve_path"
}

// Do expands and validates the target path recorded in the report.
func (s *ResolvePathStep) Do(_ context.Context, report *model.RunReport) error {
	resolved, err := fsx.ExpandHome(report.Root)
	if err != nil {
		s.logger.Error("failed to expand target path", "path", report.Root, "error", err)
		report.MarkAborted(fmt.Sprintf("failed to expand target path: %v", err))
		return nil
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Error("target directory does not exist", "path", resolved)
			report.MarkAborted(fmt.Sprintf("target directory does not exist: %s", resolved))
			return nil
		}
		s.logger.Error("failed to inspect target path", "path", resolved, "error", err)
		report.MarkAborted(fmt.Sprintf("failed to inspect target path: %v", err))
		return nil
	}

	if !info.IsDir() {
		s.logger.Error("target path is not a directory", "path", resolved)
		report.MarkAborted(fmt.Sprintf("target path is not a directory: %s", resolved))
		return nil
	}

	report.Root = resolved
	return nil
}

// SweepStep is the heart of a run: it enumerates the target directory's
// immediate entries (no recursion), classifies each regular file through
// the categorizer, resolves the destination, and moves the file or, in a
// dry run, records the planned move.
//
// Entries are processed strictly one at a time in enumeration order,
// which is not guaranteed to be sorted. A single entry's failure is
// logged, counted as skipped, and never aborts the sweep.
type SweepStep struct {
	// categorizer resolves extensions to destination folder names.
	categorizer *category.Categorizer

	// logger for structured logging.
	logger *slog.Logger
}

// SweepStepOption configures a SweepStep.
type SweepStepOption func(*SweepStep)

// WithSweepLogger sets a custom logger for the sweep step.
func WithSweepLogger(logger *slog.Logger) SweepStepOption {
	return func(s *SweepStep) {
		s.logger = logger
	}
}

// NewSweepStep creates a new sweep step using the given categorizer.
func NewSweepStep(c *category.Categorizer, opts ...SweepStepOption) *SweepStep {
	s := &SweepStep{
		categorizer: c,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *SweepStep) Name() string {
	return "sweep"
}

// Do performs the organizing pass over report.Root.
func (s *SweepStep) Do(ctx context.Context, report *model.RunReport) error {
	entries, err := os.ReadDir(report.Root)
	if err != nil {
		s.logger.Error("failed to list directory", "path", report.Root, "error", err)
		report.MarkAborted(fmt.Sprintf("failed to list directory: %v", err))
		return nil
	}

	s.logger.Info("organizing files", "path", report.Root, "entries", len(entries))
	if report.DryRun {
		s.logger.Info("dry run, no files will be moved")
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			s.logger.Warn("sweep cancelled", "reason", ctx.Err())
			return ctx.Err()
		default:
		}

		s.processEntry(report, entry)
	}

	return nil
}

// processEntry handles a single directory entry. It mutates the report
// and the filesystem but never returns an error: every per-entry failure
// is converted into a skipped action so the sweep always continues.
func (s *SweepStep) processEntry(report *model.RunReport, entry os.DirEntry) {
	name := entry.Name()

	// Only regular files are considered; directories, symlinks and other
	// entry types pass through silently with no counter change.
	if !entry.Type().IsRegular() {
		return
	}

	ext := extensionOf(name)
	if ext == "" {
		s.logger.Debug("skipping file without extension", "file", name)
		report.AddAction(model.Action{
			Source: name,
			Status: model.StatusSkipped,
			Reason: "no extension",
		})
		return
	}

	folder := s.categorizer.Categorize(ext)
	destDir := filepath.Join(report.Root, folder)

	if err := s.ensureFolder(report, destDir, folder); err != nil {
		s.logger.Error("failed to create destination folder", "folder", folder, "error", err)
		report.AddAction(model.Action{
			Source: name,
			Folder: folder,
			Status: model.StatusFailed,
			Reason: err.Error(),
		})
		return
	}

	target, err := fsx.UniquePath(filepath.Join(destDir, name))
	if err != nil {
		s.logger.Error("failed to resolve destination name", "file", name, "error", err)
		report.AddAction(model.Action{
			Source: name,
			Folder: folder,
			Status: model.StatusFailed,
			Reason: err.Error(),
		})
		return
	}

	destName := filepath.Base(target)
	renamed := destName != name
	if renamed {
		s.logger.Warn("name collision, renamed", "file", name, "renamed_to", destName)
	}

	if report.DryRun {
		s.logger.Info("planned move", "file", name, "destination", folder+"/"+destName)
		report.AddAction(model.Action{
			Source:   name,
			Folder:   folder,
			DestName: destName,
			Renamed:  renamed,
			Status:   model.StatusPlanned,
		})
		return
	}

	if err := fsx.Move(filepath.Join(report.Root, name), target); err != nil {
		s.logger.Error("failed to move file", "file", name, "error", err)
		report.AddAction(model.Action{
			Source:   name,
			Folder:   folder,
			DestName: destName,
			Renamed:  renamed,
			Status:   model.StatusFailed,
			Reason:   err.Error(),
		})
		return
	}

	s.logger.Info("moved file", "file", name, "destination", folder+"/"+destName)
	report.AddAction(model.Action{
		Source:   name,
		Folder:   folder,
		DestName: destName,
		Renamed:  renamed,
		Status:   model.StatusMoved,
	})
}

// ensureFolder creates the destination folder on first use.
// Dry runs leave the filesystem untouched.
func (s *SweepStep) ensureFolder(report *model.RunReport, destDir, folder string) error {
	if _, err := os.Stat(destDir); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if report.DryRun {
		return nil
	}

	if err := os.MkdirAll(destDir, 0750); err != nil {
		return err
	}

	s.logger.Info("created folder", "folder", folder)
	report.AddCreatedFolder(folder)
	return nil
}

// extensionOf returns the file's extension without the leading dot, or
// "" when the name has no extension worth classifying. A name consisting
// only of an extension-like suffix (".bashrc") counts as extensionless,
// and only the final suffix of a multi-dot name is taken ("archive.tar.gz"
// yields "gz").
func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

// DefaultPipeline assembles the standard organizing pipeline: path
// validation followed by the sweep.
func DefaultPipeline(c *category.Categorizer, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	p := New(append([]Option{WithLogger(logger)}, opts...)...)
	p.AddSteps(
		NewResolvePathStep(WithResolveLogger(logger)),
		NewSweepStep(c, WithSweepLogger(logger)),
	)
	return p
}
