package ports

// OutputWriter publishes values to the GitHub Actions runtime files. On
// local runs the files are absent and every write is a no-op.
type OutputWriter interface {
	// WriteOutput appends a step output, delimiter-safe for multi-line
	// values.
	WriteOutput(name, value string) error

	// AppendSummary appends markdown to the job step summary.
	AppendSummary(markdown string) error
}
