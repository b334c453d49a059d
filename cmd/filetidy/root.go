// Package main provides the entry point for the filetidy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for filetidy.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filetidy",
		Short: "Organize a directory by sorting files into category folders",
		Long: `Filetidy tidies a cluttered directory (typically the Downloads folder)
by moving each file into a subfolder based on its type: images into
Images/, documents into Documents/, and so on. Files with unrecognized
extensions go into a folder named after the uppercased extension.

Runs are one-shot: filetidy scans once, moves what it finds, prints a
tally, and exits. Use --dry-run to preview the moves first.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewOrganizeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
