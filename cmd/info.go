package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/quizfile"
)

var infoCmd = &cobra.Command{
	Use:   "info <quiz-file>",
	Short: "Show a summary of a quiz file without starting a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := loadQuiz(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, q.Title)
		if q.Description != "" {
			fmt.Fprintln(out, q.Description)
		}
		fmt.Fprintf(out, "\nQuestions: %d\nTotal points: %d\n",
			len(q.Questions), quiz.TotalPoints(q.Questions))

		fmt.Fprintln(out, "\nCategories:")
		for _, c := range quizfile.Summarize(q.Questions) {
			fmt.Fprintf(out, "  %-20s %2d questions  %3d pts\n",
				c.Category, c.Questions, c.Points)
		}

		counts := make(map[quiz.QuestionType]int)
		for i := range q.Questions {
			counts[q.Questions[i].Type]++
		}
		fmt.Fprintln(out, "\nQuestion types:")
		for _, t := range quiz.AllTypes() {
			if counts[t] > 0 {
				fmt.Fprintf(out, "  %-20s %2d\n", t, counts[t])
			}
		}
		return nil
	},
}
