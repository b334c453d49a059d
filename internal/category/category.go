package category

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category groups related file extensions under one destination folder name.
// Extensions are stored lowercase without a leading dot.
type Category struct {
	// Name is the destination folder name, kept verbatim in output
	// (e.g. "Documents", not "documents").
	Name string

	// Extensions lists the lowercase extensions belonging to this category.
	Extensions []string
}

// DefaultTable returns the built-in category table.
// The table is constructed fresh on each call so callers can merge
// user-defined categories into it without affecting other users.
//
// Extension sets across categories must not overlap. If they do anyway
// (e.g. through a careless user config), the first category in table order
// wins; this ordering is an implementation detail, not a guarantee.
func DefaultTable() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp", "ico"}},
		{Name: "Documents", Extensions: []string{"pdf", "doc", "docx", "txt", "odt", "rtf", "tex", "md"}},
		{Name: "Spreadsheets", Extensions: []string{"xls", "xlsx", "csv", "ods"}},
		{Name: "Presentations", Extensions: []string{"ppt", "pptx", "odp"}},
		{Name: "Videos", Extensions: []string{"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm"}},
		{Name: "Audio", Extensions: []string{"mp3", "wav", "flac", "aac", "ogg", "m4a", "wma"}},
		// "gz" is deliberately unlisted: only the final suffix of a name is
		// classified, so tarballs like archive.tar.gz sort into GZ/ via the
		// uppercased fallback rather than landing in Archives.
		{Name: "Archives", Extensions: []string{"zip", "rar", "7z", "tar", "bz2", "xz"}},
		{Name: "Programs", Extensions: []string{"exe", "msi", "dmg", "pkg", "deb", "rpm", "appimage"}},
		{Name: "Code", Extensions: []string{"py", "js", "java", "c", "cpp", "h", "cs", "php", "rb", "go", "rs", "html", "css"}},
	}
}

// MergeTable merges user-defined categories into a base table.
// User entries win: an extension claimed by a user category is removed
// from any base category that also lists it, and a user category with the
// same name as a base category replaces that category's extension set.
// User categories are appended in sorted name order so the merged table
// is deterministic regardless of map iteration order.
func MergeTable(base []Category, overrides map[string][]string) []Category {
	if len(overrides) == 0 {
		return base
	}

	claimed := make(map[string]bool)
	names := make([]string, 0, len(overrides))
	for name, exts := range overrides {
		names = append(names, name)
		for _, ext := range exts {
			claimed[strings.ToLower(ext)] = true
		}
	}
	sort.Strings(names)

	merged := make([]Category, 0, len(base)+len(overrides))
	for _, cat := range base {
		if _, ok := overrides[cat.Name]; ok {
			continue // replaced wholesale below
		}
		kept := make([]string, 0, len(cat.Extensions))
		for _, ext := range cat.Extensions {
			if !claimed[ext] {
				kept = append(kept, ext)
			}
		}
		if len(kept) > 0 {
			merged = append(merged, Category{Name: cat.Name, Extensions: kept})
		}
	}

	for _, name := range names {
		exts := make([]string, 0, len(overrides[name]))
		for _, ext := range overrides[name] {
			exts = append(exts, strings.ToLower(strings.TrimPrefix(ext, ".")))
		}
		merged = append(merged, Category{Name: name, Extensions: exts})
	}

	return merged
}

// Categorizer resolves a file extension to a destination folder name.
// It is pure and deterministic: the same input always yields the same
// folder name and no state is mutated by a lookup. A Categorizer is
// therefore safe to share without synchronization.
type Categorizer struct {
	// index maps lowercase extensions to their category name.
	// Built once at construction, never mutated afterwards.
	index map[string]string

	// useTable selects category lookup. When false the table is skipped
	// entirely and every extension maps to its uppercased form.
	useTable bool
}

// Option configures a Categorizer.
type Option func(*Categorizer)

// WithoutTable disables category lookup. Every extension then resolves
// to its uppercased raw form, even extensions present in the table.
func WithoutTable() Option {
	return func(c *Categorizer) {
		c.useTable = false
	}
}

// New creates a Categorizer from the given table.
// When two categories claim the same extension, the earlier category in
// table order wins.
func New(table []Category, opts ...Option) *Categorizer {
	c := &Categorizer{
		index:    make(map[string]string),
		useTable: true,
	}

	for _, cat := range table {
		for _, ext := range cat.Extensions {
			key := strings.ToLower(ext)
			if _, ok := c.index[key]; !ok {
				c.index[key] = cat.Name
			}
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Categorize returns the destination folder name for a file extension.
// The extension is given without a leading dot and may be any case.
//
// Lookup is case-insensitive. A table hit returns the category name
// verbatim; a miss returns the extension uppercased (an unrecognized
// "log" yields "LOG"). With the table disabled every extension takes
// the uppercased path.
func (c *Categorizer) Categorize(ext string) string {
	if c.useTable {
		if name, ok := c.index[strings.ToLower(ext)]; ok {
			return name
		}
	}
	return cases.Upper(language.Und).String(ext)
}
