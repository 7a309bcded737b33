package quiz

import "time"

// NoAnswer is the sentinel answer index meaning "no valid answer submitted"
// (timeout or skip). Any out-of-range index is treated the same way.
const NoAnswer = -1

// NoAnswerText is recorded as the user answer when the submitted index does
// not map to an option.
const NoAnswerText = "(no answer)"

// Engine runs one quiz session: it owns the ordered question list, the
// cursor, the score, per-question timing, and the answer history. Create one
// Engine per run; it performs no I/O and no internal locking, so it must be
// driven from a single logical flow (load, then repeatedly present/submit,
// then read results).
type Engine struct {
	questions []Question
	position  int
	score     int
	startTime time.Time
	times     []float64
	answers   []AnswerRecord

	// presented caches the shuffle for the current position so the ordering
	// shown to the user is the same one grading compares against. It is
	// invalidated when the cursor advances.
	presented *PresentedQuestion
}

// NewEngine returns an empty Engine. LoadQuestions must be called before the
// session can serve questions.
func NewEngine() *Engine {
	return &Engine{}
}

// LoadQuestions starts a fresh session over the given questions, resetting
// all counters and stamping the session start time. An empty list is legal
// and yields an immediately completed zero-question session.
func (e *Engine) LoadQuestions(questions []Question) {
	e.questions = make([]Question, len(questions))
	copy(e.questions, questions)
	e.position = 0
	e.score = 0
	e.startTime = time.Now()
	e.times = nil
	e.answers = nil
	e.presented = nil
}

// CurrentQuestion returns the question at the cursor with a shuffled answer
// ordering, or nil when every question has been answered. The shuffle is
// computed once per position and reused until SubmitAnswer advances, so
// repeated calls for the same position always agree.
func (e *Engine) CurrentQuestion() *PresentedQuestion {
	if e.position >= len(e.questions) {
		return nil
	}
	if e.presented == nil {
		e.presented = present(e.questions[e.position])
	}
	return e.presented
}

// SubmitAnswer grades answerIndex against the current question, records the
// outcome and the caller-measured time, and advances the cursor. It returns
// whether the answer was correct.
//
// After the last question it is a no-op returning false with state
// unchanged. An out-of-range index (including NoAnswer) grades as incorrect
// and records NoAnswerText; it never panics.
func (e *Engine) SubmitAnswer(answerIndex int, timeTaken float64) bool {
	pq := e.CurrentQuestion()
	if pq == nil {
		return false
	}
	if timeTaken < 0 {
		timeTaken = 0
	}

	correct := answerIndex == pq.CorrectIndex
	if correct {
		e.score++
	}

	userAnswer := NoAnswerText
	if answerIndex >= 0 && answerIndex < len(pq.ShuffledAnswers) {
		userAnswer = pq.ShuffledAnswers[answerIndex]
	}

	e.answers = append(e.answers, AnswerRecord{
		QuestionText:  pq.Text,
		UserAnswer:    userAnswer,
		CorrectAnswer: pq.CorrectAnswer,
		Correct:       correct,
		TimeTaken:     timeTaken,
	})
	e.times = append(e.times, timeTaken)
	e.position++
	e.presented = nil

	return correct
}

// Progress returns the number of questions answered so far and the session
// total. The total never changes after LoadQuestions.
func (e *Engine) Progress() (answered, total int) {
	return e.position, len(e.questions)
}

// Score returns the current count of correct answers.
func (e *Engine) Score() int {
	return e.score
}

// Done reports whether every question has been answered.
func (e *Engine) Done() bool {
	return e.position >= len(e.questions)
}

// FinalResults aggregates the session into a Result. It may be called at any
// point after LoadQuestions; aggregate computations short-circuit to zero
// rather than dividing by zero on an empty session.
func (e *Engine) FinalResults() Result {
	var totalTime float64
	if !e.startTime.IsZero() {
		totalTime = time.Since(e.startTime).Seconds()
	}

	var avg float64
	if len(e.times) > 0 {
		var sum float64
		for _, t := range e.times {
			sum += t
		}
		avg = sum / float64(len(e.times))
	}

	var pct float64
	if len(e.questions) > 0 {
		pct = float64(e.score) / float64(len(e.questions)) * 100
	}

	answers := make([]AnswerRecord, len(e.answers))
	copy(answers, e.answers)

	return Result{
		Score:          e.score,
		TotalQuestions: len(e.questions),
		Percentage:     pct,
		TotalTime:      totalTime,
		AverageTime:    avg,
		Answers:        answers,
	}
}
