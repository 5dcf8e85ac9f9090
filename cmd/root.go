package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizmix/quizmix/internal/app"
	"github.com/quizmix/quizmix/internal/runner"
)

var rootCmd = &cobra.Command{
	Use:   "quizmix [input] [output]",
	Short: "Shuffle multiple-choice question banks",
	Long: "Quizmix — extracts valid MCQ blocks from a text file, renumbers them,\n" +
		"shuffles the A-D choices, rewrites the answer letters, and exports a\n" +
		"combined file or a questions file plus an answer key.",
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tui, _ := cmd.Flags().GetBool("tui")
		if tui || len(args) == 0 {
			return app.Run()
		}
		opts, err := optionsFromArgs(cmd, args)
		if err != nil {
			return err
		}
		sum, err := runner.Run(opts)
		if err != nil {
			return err
		}
		fmt.Println(sum.String())
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Uint64("seed", 0, "Random seed for a reproducible shuffle")
	rootCmd.Flags().Bool("split", false, "Write two files: shuffled questions and an answer key")
	rootCmd.Flags().Bool("inplace", false, "Overwrite the input file (combined mode)")
	rootCmd.Flags().String("questions-out", "", "Custom path for the split questions file")
	rootCmd.Flags().String("answers-out", "", "Custom path for the split answer-key file")
	rootCmd.Flags().Bool("tui", false, "Launch the interactive terminal form")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func optionsFromArgs(cmd *cobra.Command, args []string) (runner.Options, error) {
	opts := runner.Options{Input: args[0]}
	if len(args) > 1 {
		opts.Output = args[1]
	}

	opts.InPlace, _ = cmd.Flags().GetBool("inplace")
	opts.Split, _ = cmd.Flags().GetBool("split")
	opts.QuestionsOut, _ = cmd.Flags().GetString("questions-out")
	opts.AnswersOut, _ = cmd.Flags().GetString("answers-out")

	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return runner.Options{}, err
		}
		opts.Seed = &seed
	}

	if opts.Output == "" && !opts.InPlace {
		return runner.Options{}, errors.New("output path is required unless --inplace is used")
	}
	return opts, nil
}
