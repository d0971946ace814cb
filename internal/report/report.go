// Package report renders a lint run as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mgpai22/srtlint/internal/subtitle"
)

// Report is the machine-readable summary of one lint run.
type Report struct {
	File        string  `json:"file"`
	LexIssues   int     `json:"lex_issues"`
	ParseIssues int     `json:"parse_issues"`
	TotalLines  int     `json:"total_lines"`
	Records     []Entry `json:"records"`
}

// Entry summarizes one subtitle record.
type Entry struct {
	ID    uint64   `json:"id"`
	Start string   `json:"start"`
	End   string   `json:"end"`
	Text  []string `json:"text"`
}

func New(file string, result *subtitle.Result) *Report {
	entries := make([]Entry, len(result.Records))
	for i, rec := range result.Records {
		text := rec.Text
		if text == nil {
			text = []string{}
		}
		entries[i] = Entry{
			ID:    rec.ID,
			Start: subtitle.FormatTimestamp(rec.Start),
			End:   subtitle.FormatTimestamp(rec.End),
			Text:  text,
		}
	}

	return &Report{
		File:        file,
		LexIssues:   result.LexIssues,
		ParseIssues: result.ParseIssues,
		TotalLines:  result.TotalLines,
		Records:     entries,
	}
}

// Issues is the combined count of both stages.
func (r *Report) Issues() int {
	return r.LexIssues + r.ParseIssues
}

func (r *Report) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// Write saves the report to path, creating parent directories as needed.
func (r *Report) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := r.Encode(file); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
