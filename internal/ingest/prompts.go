package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxPromptLine bounds a single prompt line.
const maxPromptLine = 1 << 20

// ParsePrompts reads one prompt per line. Blank lines and lines starting
// with '#' are skipped.
func ParsePrompts(r io.Reader, source string) ([]Prompt, error) {
	var out []Prompt
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxPromptLine)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, Prompt{Source: source, Line: line, Text: text})
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read %s: %w", source, err)
	}
	return out, nil
}

// ReadPromptFile parses a single prompt file.
func ReadPromptFile(path string) ([]Prompt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParsePrompts(f, path)
}

// ReadPrompts walks root, filters by includeExts (or defaults), skips hidden
// entries if requested and parses every matching file. root may also be a
// single file, which is read regardless of its extension. Unreadable files
// are reported in the returned errors and do not stop the walk.
func ReadPrompts(ctx context.Context, root string, includeExts []string, skipHidden bool) ([]Prompt, []FileError, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, nil, DirStats{}, errors.New("root_path is required")
	}
	exts := ExtSet(includeExts)

	var prompts []Prompt
	var failures []FileError
	var stats DirStats

	readOne := func(path string) {
		stats.Matched++
		ps, err := ReadPromptFile(path)
		if err != nil {
			failures = append(failures, FileError{Path: path, Err: err.Error()})
			stats.Failed++
			return
		}
		prompts = append(prompts, ps...)
		stats.Prompts += uint32(len(ps))
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, stats, fmt.Errorf("stat: %w", err)
	}
	if !info.IsDir() {
		stats.Scanned++
		readOne(root)
		return prompts, failures, stats, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			failures = append(failures, FileError{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && path != root && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path), exts) {
			return nil
		}
		readOne(path)
		return nil
	})
	if err != nil {
		return prompts, failures, stats, fmt.Errorf("walk: %w", err)
	}
	return prompts, failures, stats, nil
}
