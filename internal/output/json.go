package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/copyscore/internal/runner"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile writes
// to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport is the versioned report envelope.
type JSONReport struct {
	Header  JSONHeader      `json:"header"`
	Summary JSONSummary     `json:"summary"`
	Results []runner.Result `json:"results"`
}

// JSONHeader identifies the producing tool.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary aggregates the run.
type JSONSummary struct {
	TotalFiles   int    `json:"total_files"`
	Scored       int    `json:"scored"`
	Failed       int    `json:"failed"`
	AverageScore int    `json:"average_score"`
	Duration     string `json:"duration"`
}

// Format renders the summary as JSON.
func (f *JSONFormatter) Format(summary *runner.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "copyscore",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalFiles:   summary.TotalFiles,
			Scored:       summary.Scored,
			Failed:       summary.Failed,
			AverageScore: summary.AverageScore,
			Duration:     time.Since(summary.StartTime).Round(time.Millisecond).String(),
		},
		Results: summary.Results,
	}

	var (
		data []byte
		err  error
	)
	if f.indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
		return fmt.Errorf("writing report to %s: %w", f.outputFile, err)
	}
	return nil
}
