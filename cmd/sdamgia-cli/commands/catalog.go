package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Prints the subject's topic and category hierarchy.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient(false)
		defer client.Close()

		catalog, err := client.GetCatalog(cmd.Context(), scope())
		if err != nil {
			fatal("failed to fetch catalog", err)
		}
		printJson(catalog)
	},
}
