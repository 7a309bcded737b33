package quiz

// AnswerRecord captures the outcome of a single submitted (or skipped)
// question, in submission order.
type AnswerRecord struct {
	QuestionText  string
	UserAnswer    string // NoAnswerText when the submitted index maps to no option
	CorrectAnswer string
	Correct       bool
	TimeTaken     float64 // seconds, as measured by the caller
}

// Result aggregates a finished (or in-progress) session.
type Result struct {
	Score          int
	TotalQuestions int
	Percentage     float64 // 0..100, 0 for an empty session
	TotalTime      float64 // seconds since LoadQuestions
	AverageTime    float64 // mean of recorded per-question times, 0 if none
	Answers        []AnswerRecord
}
