package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		export, _ := cmd.Flags().GetBool("export")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		if export {
			return st.ExportJSON(ctx, os.Stdout)
		}

		entries, err := st.Leaderboard(ctx, limit)
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No scores yet. Play a quiz!")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tDATE\tSCORE\tACCURACY\tTIME\tCATEGORY\tDIFFICULTY")
		for i, e := range entries {
			category := e.Category
			if category == "" {
				category = "any"
			}
			difficulty := e.Difficulty
			if difficulty == "" {
				difficulty = "any"
			}
			fmt.Fprintf(w, "%d\t%s\t%d/%d\t%.1f%%\t%.1fs\t%s\t%s\n",
				i+1,
				e.PlayedAt.Format("2006-01-02 15:04"),
				e.Score, e.Total,
				e.Percentage,
				e.TotalTime,
				category,
				difficulty,
			)
		}
		return w.Flush()
	},
}

func init() {
	scoresCmd.Flags().Int("limit", 10, "Number of entries to show")
	scoresCmd.Flags().Bool("export", false, "Write all scores as JSON to stdout")
}
