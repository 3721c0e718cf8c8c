package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/copyscore/internal/lexicon"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Print the active keyword lexicon as YAML",
	Long: `Prints the lexicon the factor evaluators will match against, after any
--lexicon override file is applied. The output is itself a valid override
file, so it can be saved, edited, and passed back via --lexicon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lex := lexicon.Default()
		if lexiconFile != "" {
			var err error
			lex, err = lexicon.LoadFile(lexiconFile)
			if err != nil {
				return err
			}
		}

		data, err := yaml.Marshal(lex)
		if err != nil {
			return fmt.Errorf("marshaling lexicon: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}
