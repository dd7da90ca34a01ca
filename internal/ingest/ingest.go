package ingest

import "fmt"

// Prompt is one invoice description read from a prompt file.
type Prompt struct {
	Source string // file path
	Line   int    // 1-based line number in Source
	Text   string
}

// Ref identifies the prompt in logs and result files.
func (p Prompt) Ref() string {
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}

// FileError records a file that could not be read.
type FileError struct {
	Path string
	Err  string
}

// DirStats summarizes a directory scan.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Prompts uint32
	Failed  uint32
}
