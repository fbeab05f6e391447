package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(randomCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme <id>",
	Short: "Lists the problem ids grouped under a catalog theme.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("theme id must be a number", err)
		}

		client := newClient(false)
		defer client.Close()

		ids, err := client.GetTheme(cmd.Context(), scope(), id)
		if err != nil {
			fatal("failed to fetch theme", err)
		}
		printJson(ids)
	},
}

var randomCmd = &cobra.Command{
	Use:   "random <theme-id>",
	Short: "Fetches one randomly chosen problem from a theme.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("theme id must be a number", err)
		}

		client := newClient(false)
		defer client.Close()

		problem, err := client.RandomProblem(cmd.Context(), scope(), id)
		if err != nil {
			fatal("failed to fetch a random problem", err)
		}
		printJson(problem)
	},
}
