package commands

import (
	"fmt"
	"strconv"

	"sdamgia-go/lib/sdamgia"

	"github.com/spf13/cobra"
)

var (
	pdfVariant      *string
	pdfSolutions    *bool
	pdfProblemIds   *bool
	pdfAnswers      *bool
	pdfAnswersTable *bool
)

func init() {
	pdfVariant = pdfCmd.Flags().String("variant", "", "Layout variant: h (large margins), z (large font) or m (horizontal).")
	pdfSolutions = pdfCmd.Flags().Bool("solutions", false, "Include solutions.")
	pdfProblemIds = pdfCmd.Flags().Bool("ids", false, "Include problem ids.")
	pdfAnswers = pdfCmd.Flags().Bool("answers", false, "Include answers.")
	pdfAnswersTable = pdfCmd.Flags().Bool("key", false, "Include the answer key table.")
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <test-id>",
	Short: "Prints the url of the site-rendered pdf version of a test.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("test id must be a number", err)
		}

		client := newClient(false)
		defer client.Close()

		link, err := client.GeneratePdfLink(cmd.Context(), scope(), id, sdamgia.PdfOptions{
			Variant:      sdamgia.PdfVariant(*pdfVariant),
			Solutions:    *pdfSolutions,
			ProblemIds:   *pdfProblemIds,
			Answers:      *pdfAnswers,
			AnswersTable: *pdfAnswersTable,
		})
		if err != nil {
			fatal("failed to resolve pdf link", err)
		}
		fmt.Println(link)
	},
}
