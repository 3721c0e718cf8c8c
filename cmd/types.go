package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/copyscore/internal/baseline"
	"github.com/dotcommander/copyscore/internal/scoring"
	"github.com/dotcommander/copyscore/internal/types"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List content types with their factor weights and baselines",
	Run: func(cmd *cobra.Command, args []string) {
		printTypes()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func printTypes() {
	header := lipgloss.NewStyle().Bold(true)

	for _, ct := range types.ContentTypes {
		w := scoring.WeightsFor(ct)
		b := baseline.For(ct)

		fmt.Println(header.Render(string(ct)))
		fmt.Printf("  weights:  emotional %.2f · urgency %.2f · social %.2f · value %.2f · cta %.2f · trust %.2f\n",
			w.EmotionalAppeal, w.Urgency, w.SocialProof,
			w.ValueProposition, w.CallToAction, w.TrustBuilding)
		fmt.Printf("  baseline: CTR %.1f%% · conversion %.1f%%\n\n", b.CTR, b.Conversion)
	}
	fmt.Println("Unrecognized labels fall back to the blog weights and baseline.")
}
