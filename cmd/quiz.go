package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/asheth/quizdeck/internal/cli"
	"github.com/asheth/quizdeck/internal/opentdb"
	"github.com/asheth/quizdeck/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play a quiz on plain stdin/stdout",
	Long:  "Play a quiz without the full-screen interface, for dumb terminals and pipes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetInt("amount")
		category, _ := cmd.Flags().GetInt("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		timeLimit, _ := cmd.Flags().GetInt("time-limit")

		switch difficulty {
		case "", quiz.DifficultyEasy, quiz.DifficultyMedium, quiz.DifficultyHard:
		default:
			return fmt.Errorf("invalid difficulty %q (want easy, medium or hard)", difficulty)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Hour)
		defer cancel()

		client := opentdb.NewClient(nil)
		categoryName := ""
		if category > 0 {
			categoryName = lookupCategoryName(ctx, client, category)
		}

		return cli.Run(ctx, os.Stdin, os.Stdout, client, st, cli.Options{
			Amount:       amount,
			Category:     category,
			CategoryName: categoryName,
			Difficulty:   difficulty,
			TimeLimit:    timeLimit,
		})
	},
}

// lookupCategoryName resolves a category ID to its display name, best effort.
func lookupCategoryName(ctx context.Context, client *opentdb.Client, id int) string {
	cats, err := client.Categories(ctx)
	if err != nil {
		return ""
	}
	for _, c := range cats {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func init() {
	quizCmd.Flags().IntP("amount", "n", 10, "Number of questions (1-50)")
	quizCmd.Flags().IntP("category", "c", 0, "OpenTDB category ID (see 'quizdeck categories')")
	quizCmd.Flags().StringP("difficulty", "d", "", "Difficulty: easy, medium or hard")
	quizCmd.Flags().IntP("time-limit", "t", 0, "Per-question time limit in seconds (0 = off)")
}
