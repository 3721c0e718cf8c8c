package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/copyscore/internal/config"
	"github.com/dotcommander/copyscore/internal/lexicon"
	"github.com/dotcommander/copyscore/internal/outputters"
	"github.com/dotcommander/copyscore/internal/runner"
	"github.com/dotcommander/copyscore/internal/scoring"
)

var (
	contentType  string
	product      string
	audience     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	minScore     int
	lexiconFile  string
	weightsFile  string
)

var rootCmd = &cobra.Command{
	Use:   "copyscore [paths...]",
	Short: "Copyscore - conversion scoring for marketing copy",
	Long: `Copyscore estimates how well a piece of marketing or affiliate copy will
convert readers into customers. It scores six persuasion factors (emotional
appeal, urgency, social proof, value proposition, call to action, trust
building), weights them per channel, and derives CTR, conversion, and
revenue estimates plus actionable suggestions.

Pass one or more files or directories to score, or pipe content on stdin.
Content type is taken from --type, file frontmatter, or the directory
layout, in that order.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&contentType, "type", "t", "", "Content type (blog|email|social|landing_page|youtube); overrides frontmatter and path inference")
	rootCmd.PersistentFlags().StringVarP(&product, "product", "p", "", "Product name the copy promotes")
	rootCmd.PersistentFlags().StringVarP(&audience, "audience", "a", "", "Target audience label")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show the per-signal score breakdown")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (json/markdown formats)")
	rootCmd.PersistentFlags().IntVar(&minScore, "min-score", 0, "Exit non-zero when any composite score falls below this value")
	rootCmd.PersistentFlags().StringVar(&lexiconFile, "lexicon", "", "YAML lexicon override file")
	rootCmd.PersistentFlags().StringVar(&weightsFile, "weights", "", "YAML weight override file")

	viper.BindPFlag("contentType", rootCmd.PersistentFlags().Lookup("type"))
	viper.BindPFlag("product", rootCmd.PersistentFlags().Lookup("product"))
	viper.BindPFlag("audience", rootCmd.PersistentFlags().Lookup("audience"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("minScore", rootCmd.PersistentFlags().Lookup("min-score"))
	viper.BindPFlag("lexicon", rootCmd.PersistentFlags().Lookup("lexicon"))
	viper.BindPFlag("weights", rootCmd.PersistentFlags().Lookup("weights"))
}

func initConfig() {
	for _, path := range config.ConfigFiles {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

func runScore(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	run := runner.New(engine, cfg)
	var summary *runner.Summary
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		summary = run.RunContent("stdin", string(data))
	} else {
		summary, err = run.RunPaths(args)
		if err != nil {
			return err
		}
	}

	if err := outputters.NewOutputter(cfg).Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) could not be scored", summary.Failed)
	}
	if cfg.MinScore > 0 {
		for _, result := range summary.Results {
			if result.Report != nil && result.Report.ConversionScore < cfg.MinScore {
				return fmt.Errorf("%s scored %d, below minimum %d",
					result.File, result.Report.ConversionScore, cfg.MinScore)
			}
		}
	}
	return nil
}

// buildEngine assembles the scoring engine from configuration: lexicon and
// weight overrides plus prediction options.
func buildEngine(cfg *config.Config) (*scoring.Engine, error) {
	lex := lexicon.Default()
	if cfg.LexiconFile != "" {
		var err error
		lex, err = lexicon.LoadFile(cfg.LexiconFile)
		if err != nil {
			return nil, err
		}
	}

	opts := scoring.Options{
		ValuePerConversion: cfg.ValuePerConv,
		CTRCap:             cfg.CTRCap,
	}
	if cfg.WeightsFile != "" {
		weights, err := scoring.LoadWeightsFile(cfg.WeightsFile)
		if err != nil {
			return nil, err
		}
		opts.Weights = weights
	}
	return scoring.New(lex, opts), nil
}
