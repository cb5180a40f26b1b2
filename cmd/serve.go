package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/httpapi"
)

var serveAddr string

// serveCmd exposes the quiz engine over HTTP. A quiz file given on the
// command line is pre-registered; further quizzes can be uploaded through
// the API.
var serveCmd = &cobra.Command{
	Use:   "serve [quiz-file]",
	Short: "Start the quiz REST API server",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := httpapi.NewServer()

		if len(args) == 1 {
			q, err := loadQuiz(args[0])
			if err != nil {
				return err
			}
			id := srv.AddQuiz(q)
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %q as quiz %s\n", q.Title, id)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", serveAddr)
		return srv.Router().Run(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}
