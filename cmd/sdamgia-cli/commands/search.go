package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Searches the problem bank and prints matching problem ids.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(false)
		defer client.Close()

		ids, err := client.Search(cmd.Context(), scope(), args[0])
		if err != nil {
			fatal("search failed", err)
		}
		printJson(ids)
	},
}
