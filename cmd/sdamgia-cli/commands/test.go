package commands

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test <id>",
	Short: "Lists the problem ids an existing test consists of.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("test id must be a number", err)
		}

		client := newClient(false)
		defer client.Close()

		test, err := client.GetTest(cmd.Context(), scope(), id)
		if err != nil {
			fatal("failed to fetch test", err)
		}
		printJson(test)
	},
}
