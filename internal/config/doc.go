// Package config provides configuration structures and utilities for
// filetidy. It defines the options for a single organizing run and the
// loader for the optional YAML file that extends the category table.
package config
