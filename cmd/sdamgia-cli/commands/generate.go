package commands

import (
	"strconv"

	"sdamgia-go/lib/sdamgia"

	"github.com/spf13/cobra"
)

var (
	generateFull   *int
	generateCounts *map[string]int
)

func init() {
	generateFull = generateCmd.Flags().Int("per-topic", 0, "How many problems to pull from every catalog topic.")
	generateCounts = generateCmd.Flags().StringToInt("counts", nil, "Per-topic problem counts as <position>=<count> pairs.")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [--per-topic <n>] [--counts 1=2,5=1]",
	Short: "Asks the site to assemble a fresh test and prints its id.",
	Run: func(cmd *cobra.Command, args []string) {
		problems := sdamgia.TestProblems{Full: *generateFull}
		if len(*generateCounts) > 0 {
			problems.Counts = map[int]int{}
			for position, count := range *generateCounts {
				p, err := strconv.Atoi(position)
				if err != nil {
					fatal("topic positions must be numbers", err)
				}
				problems.Counts[p] = count
			}
		}

		client := newClient(false)
		defer client.Close()

		id, err := client.GenerateTest(cmd.Context(), scope(), problems)
		if err != nil {
			fatal("failed to generate test", err)
		}
		printJson(id)
	},
}
