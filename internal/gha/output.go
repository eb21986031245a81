package gha

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/thomas-vilte/gemini-review-action/internal/ports"
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer appends step outputs and summaries to the files the Actions runner
// exposes through GITHUB_OUTPUT and GITHUB_STEP_SUMMARY. Empty paths make
// every write a no-op so local runs work without the runner.
type Writer struct {
	outputPath  string
	summaryPath string
}

func NewWriter(outputPath, summaryPath string) *Writer {
	return &Writer{
		outputPath:  outputPath,
		summaryPath: summaryPath,
	}
}

// WriteOutput appends name=value to the output file using the runner's
// heredoc format, which is safe for multi-line values like review bodies.
func (w *Writer) WriteOutput(name, value string) error {
	if w.outputPath == "" {
		return nil
	}

	delimiter, err := heredocDelimiter(value)
	if err != nil {
		return err
	}

	entry := fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	return appendToFile(w.outputPath, entry)
}

// AppendSummary appends markdown to the job step summary.
func (w *Writer) AppendSummary(markdown string) error {
	if w.summaryPath == "" {
		return nil
	}
	return appendToFile(w.summaryPath, markdown+"\n")
}

// heredocDelimiter picks a random delimiter not contained in the value, the
// same scheme the runner's toolkit uses against output injection.
func heredocDelimiter(value string) (string, error) {
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate output delimiter: %w", err)
		}
		delimiter := "ghadelimiter_" + hex.EncodeToString(buf)
		if !strings.Contains(value, delimiter) {
			return delimiter, nil
		}
	}
}

func appendToFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}
	return nil
}
