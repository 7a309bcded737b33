package session

import "time"

// timerTickMsg is sent every second while a question countdown is running.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the answer feedback overlay is dismissed.
type feedbackDoneMsg struct{}

// quizEndMsg is sent to trigger the end-of-quiz flow.
type quizEndMsg struct{}
