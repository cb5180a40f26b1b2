package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/results"
	"github.com/abhisek/quizdeck/internal/session"
)

var (
	runAnswers []string
	runShuffle bool
	runSeed    int64
	runSave    bool
)

// runCmd grades a list of answers against a quiz file without the TUI.
// Useful for scripting and for checking a question file end to end.
var runCmd = &cobra.Command{
	Use:   "run <quiz-file>",
	Short: "Run a quiz non-interactively with pre-supplied answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := loadQuiz(args[0])
		if err != nil {
			return err
		}

		opts := session.Options{Shuffle: runShuffle}
		if runShuffle && cmd.Flags().Changed("seed") {
			opts.Rand = rand.New(rand.NewSource(runSeed))
		}
		sess := session.New(q.Questions, opts)

		out := cmd.OutOrStdout()
		for _, answer := range runAnswers {
			cur := sess.Current()
			if cur == nil {
				break
			}
			outcome, err := sess.Submit(answer)
			if err != nil {
				return err
			}

			mark := "incorrect"
			if outcome.Correct {
				mark = "correct"
			}
			fmt.Fprintf(out, "%-10s %s  (answered: %q, expected: %s)\n",
				cur.ID, mark, answer, outcome.CorrectAnswer)
		}

		// Fewer answers than questions ends the attempt early.
		sess.Abort()

		sum := results.Summarize(sess)
		sum.Title = q.Title
		fmt.Fprintf(out, "\nScore: %d/%d points (%.1f%%), %d/%d correct\n",
			sum.TotalPoints, sum.MaxPoints, sum.Percentage, sum.Correct, sum.Answered)

		if runSave {
			path, err := results.Save(resolveResultsDir(cmd), sum)
			if err != nil {
				return fmt.Errorf("save results: %w", err)
			}
			fmt.Fprintf(out, "Results saved to %s\n", path)
		}
		return nil
	},
}

func init() {
	runCmd.Args = cobra.ExactArgs(1)
	runCmd.Flags().StringSliceVar(&runAnswers, "answers", nil, "Answers in question order (repeat or comma-separate)")
	runCmd.Flags().BoolVar(&runShuffle, "shuffle", false, "Randomize question order")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "Deterministic shuffle seed (implies reproducible order)")
	runCmd.Flags().BoolVar(&runSave, "save", false, "Export results to a JSON file")
}
