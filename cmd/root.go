package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/quizfile"
	"github.com/abhisek/quizdeck/internal/results"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck <quiz-file>",
	Short: "Interactive quiz runner for the terminal",
	Long:  "Quizdeck loads a JSON question file and runs an interactive quiz session in the terminal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := loadQuiz(args[0])
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Quiz:       q,
			ResultsDir: resolveResultsDir(cmd),
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("results-dir", "", "Directory for exported result files (overrides QUIZDECK_RESULTS_DIR env var)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadQuiz reads and validates a quiz file, rejecting empty question sets
// up front so every command shares the same failure mode.
func loadQuiz(path string) (*quizfile.Quiz, error) {
	q, err := quizfile.Load(path)
	if err != nil {
		return nil, err
	}
	if len(q.Questions) == 0 {
		return nil, fmt.Errorf("%s: quiz has no questions", path)
	}
	return q, nil
}

// resolveResultsDir returns the export directory using the --results-dir
// flag (highest priority), then the QUIZDECK_RESULTS_DIR env var, then the
// working directory.
func resolveResultsDir(cmd *cobra.Command) string {
	if d, _ := cmd.Flags().GetString("results-dir"); d != "" {
		return d
	}
	return results.DefaultDir()
}
