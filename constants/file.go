package constants

import (
	"path/filepath"
	"strings"
)

// ExportFormat selects how generated invoices are written.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatXLSX ExportFormat = "xlsx"
)

// PromptExtensions holds the default file extensions read as prompt sources.
var PromptExtensions = map[string]struct{}{
	"txt":    {},
	"prompt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FormatFromPath picks the export format from an output path, defaulting to JSON.
func FormatFromPath(path string) ExportFormat {
	if NormalizeExt(filepath.Ext(path)) == string(FormatXLSX) {
		return FormatXLSX
	}
	return FormatJSON
}
