// Package category maps file extensions to destination folder names.
// It holds the static extension table used by the organizing pass and
// the pure lookup logic that decides where a file belongs.
package category
