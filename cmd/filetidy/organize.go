package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/filetidy/internal/category"
	"github.com/nao1215/filetidy/internal/config"
	"github.com/nao1215/filetidy/internal/log"
	"github.com/nao1215/filetidy/internal/model"
	"github.com/nao1215/filetidy/internal/pipeline"
	"github.com/nao1215/filetidy/internal/report"
	"github.com/spf13/cobra"
)

// NewOrganizeCmd creates the organize command.
func NewOrganizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Sort the files in a directory into category folders",
		Long: `Organize scans the target directory's immediate entries and moves each
file into a subfolder based on its extension:

- Recognized extensions go to their category folder (Images, Documents, ...)
- Unrecognized extensions go to a folder named after the uppercased extension
- Files without an extension are left in place and counted as skipped
- Subdirectories are never touched and never entered

Destination folders are created on demand. If a file with the same name
already exists at the destination, the moved file gets a numeric suffix
(report.pdf becomes report_1.pdf).

A run that cannot start (missing or invalid target directory) reports a
zero tally and still exits successfully.

Examples:
  # Organize the Downloads folder
  filetidy organize

  # Organize another directory
  filetidy organize --path ~/Desktop

  # Preview without moving anything
  filetidy organize --dry-run

  # Sort by raw extension instead of categories (JPG/, PDF/, ...)
  filetidy organize --no-categories

  # Output JSON report
  filetidy organize --json

  # Use a custom configuration file
  filetidy organize -c mycategories.yaml

Configuration file (.filetidy.yaml) example:
  path: ~/Downloads
  categories:
    Ebooks:
      - epub
      - mobi`,
		Args: cobra.NoArgs,
		RunE: runOrganizeCmd,
	}

	// Target selection flags
	cmd.Flags().StringP("path", "p", config.DefaultDownloadsDir(),
		"Directory to organize")

	// Behavior flags
	cmd.Flags().Bool("no-categories", false,
		"Sort by uppercased extension instead of category folders")
	cmd.Flags().BoolP("dry-run", "n", false,
		"Report planned moves without touching the filesystem")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .filetidy.yaml in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runOrganizeCmd executes the organize command.
func runOrganizeCmd(cmd *cobra.Command, _ []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.New(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runOrganize(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. A --path flag given on the command line wins over a
// path set in the configuration file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Path, err = cmd.Flags().GetString("path")
	if err != nil {
		return nil, err
	}

	noCategories, err := cmd.Flags().GetBool("no-categories")
	if err != nil {
		return nil, err
	}
	cfg.UseCategories = !noCategories

	cfg.DryRun, err = cmd.Flags().GetBool("dry-run")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load custom categories from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Categories = cf.Categories
		if cf.Path != "" && !cmd.Flags().Changed("path") {
			cfg.Path = cf.Path
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runOrganize executes one organizing run.
func runOrganize(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Debug("starting run",
		"path", cfg.Path,
		"useCategories", cfg.UseCategories,
		"dryRun", cfg.DryRun,
	)

	categorizer := buildCategorizer(cfg)
	runReport := model.NewRunReport(cfg.Path, cfg.DryRun, cfg.UseCategories)

	p := pipeline.DefaultPipeline(categorizer, logger)
	if err := p.Execute(ctx, runReport); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	runReport.Finish()

	return outputReport(cfg, runReport)
}

// buildCategorizer assembles the extension resolver for this run.
// Custom categories from the config file are merged over the built-in
// table; with --no-categories the table is bypassed entirely.
func buildCategorizer(cfg *config.Config) *category.Categorizer {
	if !cfg.UseCategories {
		return category.New(nil, category.WithoutTable())
	}
	return category.New(category.MergeTable(category.DefaultTable(), cfg.Categories))
}

// outputReport outputs the run report in the requested format.
func outputReport(cfg *config.Config, runReport *model.RunReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, report.WithPrettyPrint())
		_, err := writer.Write(runReport)
		return err
	}

	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(runReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	_, err := writer.Write(runReport)
	return err
}
