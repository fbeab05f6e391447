package commands

import (
	"fmt"
	"os"
	"strconv"

	"sdamgia-go/lib/render"
	"sdamgia-go/lib/sdamgia"

	"github.com/spf13/cobra"
)

var (
	renderFormat *string
	renderOut    *string
	renderOcr    *bool
)

func init() {
	renderFormat = renderCmd.Flags().String("format", "md", "Output format, md or pdf.")
	renderOut = renderCmd.Flags().String("out", "", "Write to a file instead of stdout.")
	renderOcr = renderCmd.Flags().Bool("ocr", false, "Transcribe formula images to LaTeX using the configured gemini key.")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <problem-id> [--format md|pdf] [--out <path>]",
	Short: "Fetches a problem and renders it as markdown or pdf.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("problem id must be a number", err)
		}

		client := newClient(*renderOcr)
		defer client.Close()

		problem, err := client.GetProblem(cmd.Context(), scope(), id, sdamgia.ProblemOptions{
			RecognizeText: *renderOcr,
		})
		if err != nil {
			fatal("failed to fetch problem", err)
		}

		var output []byte
		switch *renderFormat {
		case "md":
			markdown, err := render.Markdown(problem)
			if err != nil {
				fatal("failed to render markdown", err)
			}
			output = []byte(markdown)
		case "pdf":
			output, err = render.Pdf(problem)
			if err != nil {
				fatal("failed to render pdf", err)
			}
			if *renderOut == "" {
				fatal("pdf output needs a file", fmt.Errorf("pass --out <path> when rendering pdf"))
			}
		default:
			fatal("unknown format", fmt.Errorf("format must be md or pdf, got %q", *renderFormat))
		}

		if *renderOut == "" {
			fmt.Print(string(output))
			return
		}
		if err := os.WriteFile(*renderOut, output, 0644); err != nil {
			fatal("failed to write output", err)
		}
	},
}
