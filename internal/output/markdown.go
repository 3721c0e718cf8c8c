package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/copyscore/internal/runner"
)

// MarkdownFormatter formats output as Markdown.
type MarkdownFormatter struct {
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty outputFile
// writes to stdout.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// Format renders the summary as a Markdown report.
func (f *MarkdownFormatter) Format(summary *runner.Summary) error {
	var builder strings.Builder

	builder.WriteString("# Copyscore Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Duration:** %v\n\n", time.Since(summary.StartTime).Round(time.Millisecond)))

	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Value |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Files Scored | %d |\n", summary.Scored))
	builder.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.Failed))
	builder.WriteString(fmt.Sprintf("| Average Score | %d/100 |\n", summary.AverageScore))
	builder.WriteString("\n")

	builder.WriteString("## Results\n\n")
	if summary.TotalFiles == 0 {
		builder.WriteString("*No content found to score.*\n")
	}
	for _, result := range summary.Results {
		f.writeResult(&builder, result)
	}

	if f.outputFile == "" {
		_, err := fmt.Print(builder.String())
		return err
	}
	if err := os.WriteFile(f.outputFile, []byte(builder.String()), 0644); err != nil {
		return fmt.Errorf("writing report to %s: %w", f.outputFile, err)
	}
	return nil
}

func (f *MarkdownFormatter) writeResult(builder *strings.Builder, result runner.Result) {
	builder.WriteString(fmt.Sprintf("### %s\n\n", result.File))
	if result.Err != "" {
		builder.WriteString(fmt.Sprintf("⚠️ %s\n\n", result.Err))
		return
	}

	report := result.Report
	builder.WriteString(fmt.Sprintf("**Score:** %d/100 (%s) · **Type:** %s\n\n",
		report.ConversionScore, report.Tier, result.Type))

	builder.WriteString("| Factor | Score |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Emotional Appeal | %d |\n", report.Factors.EmotionalAppeal))
	builder.WriteString(fmt.Sprintf("| Urgency | %d |\n", report.Factors.Urgency))
	builder.WriteString(fmt.Sprintf("| Social Proof | %d |\n", report.Factors.SocialProof))
	builder.WriteString(fmt.Sprintf("| Value Proposition | %d |\n", report.Factors.ValueProposition))
	builder.WriteString(fmt.Sprintf("| Call To Action | %d |\n", report.Factors.CallToAction))
	builder.WriteString(fmt.Sprintf("| Trust Building | %d |\n", report.Factors.TrustBuilding))
	builder.WriteString("\n")

	builder.WriteString(fmt.Sprintf("Estimated CTR %.2f%%, conversion %.2f%%, revenue projection %d.\n\n",
		report.Predictions.EstimatedCTR,
		report.Predictions.EstimatedConversionRate,
		report.Predictions.RevenueProjection))

	if len(report.Suggestions) > 0 {
		builder.WriteString("**Suggestions:**\n\n")
		for _, suggestion := range report.Suggestions {
			builder.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
		builder.WriteString("\n")
	}
}
