package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/asheth/quizdeck/internal/opentdb"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available trivia categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := opentdb.NewClient(nil).Categories(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch categories: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, c := range cats {
			fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
		}
		return w.Flush()
	},
}
