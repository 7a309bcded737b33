package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asheth/quizdeck/internal/opentdb"
	"github.com/asheth/quizdeck/internal/quiz"
	"github.com/asheth/quizdeck/internal/store"
)

const maxAttempts = 3

// Options configure a non-interactive quiz run.
type Options struct {
	Amount       int
	Category     int    // OpenTDB category ID, 0 = any
	CategoryName string // display label for saved scores
	Difficulty   string // "easy"|"medium"|"hard", "" = any
	TimeLimit    int    // seconds per question, 0 = off
}

// Run plays one quiz on plain stdin/stdout.
func Run(ctx context.Context, in io.Reader, out io.Writer, client *opentdb.Client, st *store.Store, opts Options) error {
	questions, err := client.FetchQuestions(ctx, opentdb.Request{
		Amount:     opts.Amount,
		Category:   opts.Category,
		Difficulty: opts.Difficulty,
	})
	if err != nil {
		return err
	}

	engine := quiz.NewEngine()
	engine.LoadQuestions(questions)

	reader := bufio.NewReader(in)

	for {
		q := engine.CurrentQuestion()
		if q == nil {
			break
		}

		answered, total := engine.Progress()
		printQuestion(out, answered+1, total, q, opts.TimeLimit)

		start := time.Now()
		chosenIndex, ok := readAnswer(reader, out, len(q.ShuffledAnswers))
		elapsed := time.Since(start).Seconds()

		correctText := q.ShuffledAnswers[q.CorrectIndex]
		fmt.Fprintln(out)

		switch {
		case !ok:
			engine.SubmitAnswer(quiz.NoAnswer, elapsed)
			fmt.Fprintf(out, "Skipping. Correct answer was %s\n", correctText)

		case opts.TimeLimit > 0 && elapsed > float64(opts.TimeLimit):
			// The prompt blocks while the user types, so the limit is
			// checked after the fact.
			engine.SubmitAnswer(quiz.NoAnswer, elapsed)
			fmt.Fprintf(out, "Time's up! (%.1fs) Correct answer was %s\n", elapsed, correctText)

		case engine.SubmitAnswer(chosenIndex, elapsed):
			fmt.Fprintln(out, "Correct!")

		default:
			fmt.Fprintf(out, "Wrong. Correct answer was %s\n", correctText)
		}
		fmt.Fprintln(out)
	}

	result := engine.FinalResults()
	printResults(out, result)

	if result.TotalQuestions > 0 && promptYesNo(reader, out, "\nShow detailed results? (y/N) ") {
		printReview(out, result)
	}

	if st != nil && result.TotalQuestions > 0 {
		promptSave(ctx, reader, out, st, result, opts)
	}
	return nil
}

func printQuestion(out io.Writer, number, total int, q *quiz.PresentedQuestion, timeLimit int) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d/%d: %s\n\n", number, total, q.Text)
	for i, answer := range q.ShuffledAnswers {
		fmt.Fprintf(out, "%c. %s\n", 'A'+i, answer)
	}
	fmt.Fprintln(out)
	if timeLimit > 0 {
		fmt.Fprintf(out, "(%d seconds) ", timeLimit)
	}
	fmt.Fprint(out, "Your answer: ")
}

// readAnswer reads a letter choice, allowing a few retries on bad input.
func readAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (int, bool) {
	if optionCount < 1 {
		return quiz.NoAnswer, false
	}

	maxLetter := byte('A' + optionCount - 1)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := reader.ReadString('\n')
		if err != nil {
			return quiz.NoAnswer, false
		}

		line = strings.ToUpper(strings.TrimSpace(line))
		if len(line) == 1 {
			letter := line[0]
			if letter >= 'A' && letter <= maxLetter {
				return int(letter - 'A'), true
			}
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c: ", maxLetter)
		}
	}

	return quiz.NoAnswer, false
}

func printResults(out io.Writer, res quiz.Result) {
	fmt.Fprintln(out, "========================================")
	fmt.Fprintln(out, "              QUIZ RESULTS")
	fmt.Fprintln(out, "========================================")
	fmt.Fprintf(out, "Score:            %d/%d (%.1f%%)\n", res.Score, res.TotalQuestions, res.Percentage)
	fmt.Fprintf(out, "Total time:       %.1fs\n", res.TotalTime)
	fmt.Fprintf(out, "Avg per question: %.1fs\n", res.AverageTime)
	fmt.Fprintln(out)
	fmt.Fprintln(out, rankMessage(res.Percentage))
}

// rankMessage mirrors the score bands shown after a run.
func rankMessage(pct float64) string {
	switch {
	case pct >= 80:
		return "Excellent work!"
	case pct >= 60:
		return "Good job!"
	default:
		return "Keep practicing!"
	}
}

// printReview lists every question with the given and correct answers.
func printReview(out io.Writer, res quiz.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "----------------------------------------")
	for i, a := range res.Answers {
		mark := "✗"
		if a.Correct {
			mark = "✓"
		}
		fmt.Fprintf(out, "%d. %s %s\n", i+1, mark, a.QuestionText)
		fmt.Fprintf(out, "   Your answer:    %s\n", a.UserAnswer)
		if !a.Correct {
			fmt.Fprintf(out, "   Correct answer: %s\n", a.CorrectAnswer)
		}
		fmt.Fprintf(out, "   Time taken:     %.1fs\n", a.TimeTaken)
	}
}

// promptYesNo reads one line and reports whether it was an explicit yes.
// Read errors and anything but y count as no.
func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y"
}

func promptSave(ctx context.Context, reader *bufio.Reader, out io.Writer, st *store.Store, res quiz.Result, opts Options) {
	if !promptYesNo(reader, out, "\nSave this score? (y/N) ") {
		return
	}

	entry := store.NewScoreEntry(uuid.New().String(), res, opts.CategoryName, opts.Difficulty)
	if err := st.Append(ctx, entry); err != nil {
		fmt.Fprintf(out, "Could not save score: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Score saved.")
}
