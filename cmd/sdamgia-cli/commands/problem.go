package commands

import (
	"strconv"

	"sdamgia-go/lib/sdamgia"

	"github.com/spf13/cobra"
)

var problemOcr *bool

func init() {
	problemOcr = problemCmd.Flags().Bool("ocr", false, "Transcribe formula images to LaTeX using the configured gemini key.")
	rootCmd.AddCommand(problemCmd)
}

var problemCmd = &cobra.Command{
	Use:   "problem <id>",
	Short: "Fetches a single problem and prints it as json.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("problem id must be a number", err)
		}

		client := newClient(*problemOcr)
		defer client.Close()

		problem, err := client.GetProblem(cmd.Context(), scope(), id, sdamgia.ProblemOptions{
			RecognizeText: *problemOcr,
		})
		if err != nil {
			fatal("failed to fetch problem", err)
		}
		printJson(problem)
	},
}
