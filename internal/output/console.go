// Package output renders score summaries as console text, JSON, or Markdown.
package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/copyscore/internal/runner"
)

// ConsoleFormatter formats output for terminal display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format prints the summary to stdout.
func (f *ConsoleFormatter) Format(summary *runner.Summary) error {
	if f.quiet {
		// Exit code only in quiet mode.
		return nil
	}

	for _, result := range summary.Results {
		f.printResult(result)
	}
	f.printSummary(summary)
	return nil
}

func (f *ConsoleFormatter) printResult(result runner.Result) {
	if result.Err != "" {
		fmt.Printf("%s %s\n", f.style("9").Render("✗"), result.File)
		fmt.Printf("    %s\n", f.style("9").Render(result.Err))
		return
	}

	report := result.Report
	header := fmt.Sprintf("%s  [%s]  score %d/100 (%s)",
		result.File, result.Type, report.ConversionScore, report.Tier)
	fmt.Printf("%s %s\n", f.tierStyle(report.Tier).Render("●"), header)

	fmt.Printf("    emotional %d · urgency %d · social %d · value %d · cta %d · trust %d\n",
		report.Factors.EmotionalAppeal, report.Factors.Urgency,
		report.Factors.SocialProof, report.Factors.ValueProposition,
		report.Factors.CallToAction, report.Factors.TrustBuilding)
	fmt.Printf("    est. CTR %.2f%% · est. conversion %.2f%% · revenue projection %d\n",
		report.Predictions.EstimatedCTR,
		report.Predictions.EstimatedConversionRate,
		report.Predictions.RevenueProjection)

	if f.verbose {
		for _, metric := range report.Details {
			if metric.Points == 0 {
				continue
			}
			fmt.Printf("      +%d %s (%s)\n", metric.Points, metric.Name, metric.Factor)
		}
	}
	for _, suggestion := range report.Suggestions {
		fmt.Printf("    %s %s\n", f.style("3").Render("→"), suggestion)
	}
}

func (f *ConsoleFormatter) printSummary(summary *runner.Summary) {
	duration := time.Since(summary.StartTime).Round(time.Millisecond)
	line := fmt.Sprintf("%d scored, %d failed · average %d/100 · %v",
		summary.Scored, summary.Failed, summary.AverageScore, duration)
	fmt.Printf("\n%s\n", f.style("7").Render(line))
}

func (f *ConsoleFormatter) style(color string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (f *ConsoleFormatter) tierStyle(tier string) lipgloss.Style {
	switch tier {
	case "A", "B":
		return f.style("10") // green
	case "C":
		return f.style("3") // yellow
	default:
		return f.style("9") // red
	}
}
