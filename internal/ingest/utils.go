package ingest

import (
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/invoice-drafter/constants"
)

// ExtSet builds a lookup set from user supplied extensions, falling back to
// the default prompt extensions when none are given.
func ExtSet(includeExts []string) map[string]struct{} {
	exts := map[string]struct{}{}
	for _, e := range includeExts {
		if e = constants.NormalizeExt(strings.TrimSpace(e)); e != "" {
			exts[e] = struct{}{}
		}
	}
	if len(exts) == 0 {
		return constants.PromptExtensions
	}
	return exts
}

// AllowedExt checks if a file extension is in exts.
func AllowedExt(ext string, exts map[string]struct{}) bool {
	_, ok := exts[constants.NormalizeExt(ext)]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
