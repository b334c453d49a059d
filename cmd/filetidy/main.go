// Package main provides the entry point for the filetidy CLI.
//
// Filetidy organizes a cluttered directory (typically the Downloads
// folder) by moving files into subfolders named after their category
// or extension.
//
// Usage:
//
//	filetidy organize
//	filetidy organize --path ~/Desktop --dry-run
//
// See --help for all available options.
package main

// main is the entry point for filetidy.
func main() {
	Execute()
}
