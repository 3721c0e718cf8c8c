// Package outputters dispatches score summaries to the formatter selected by
// configuration.
package outputters

import (
	"fmt"

	"github.com/dotcommander/copyscore/internal/config"
	"github.com/dotcommander/copyscore/internal/output"
	"github.com/dotcommander/copyscore/internal/runner"
)

// Outputter handles output formatting.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{config: config}
}

// Format renders the summary using the configured format.
func (o *Outputter) Format(summary *runner.Summary) error {
	switch o.config.Format {
	case "console":
		return output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose).Format(summary)
	case "json":
		return output.NewJSONFormatter(true, o.config.Output).Format(summary)
	case "markdown":
		return output.NewMarkdownFormatter(o.config.Output).Format(summary)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
