package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/asheth/quizdeck/internal/quiz"
	"github.com/asheth/quizdeck/internal/router"
	"github.com/asheth/quizdeck/internal/screen"
	"github.com/asheth/quizdeck/internal/screens/summary"
	"github.com/asheth/quizdeck/internal/store"
	"github.com/asheth/quizdeck/internal/ui/components"
	"github.com/asheth/quizdeck/internal/ui/layout"
)

// Options configure a quiz run.
type Options struct {
	Store      *store.Store
	Category   string        // display label, "" = any
	Difficulty string        // "easy"|"medium"|"hard", "" = any
	TimeLimit  time.Duration // per question, 0 = no timer

	// Restart produces a fresh setup screen for the "play again" flow.
	Restart func() screen.Screen
}

// SessionScreen drives one quiz run against the engine.
type SessionScreen struct {
	engine *quiz.Engine
	opts   Options

	mc            components.MultiChoice
	questionStart time.Time
	remaining     time.Duration

	showingFeedback bool
	showingQuit     bool
	lastCorrect     bool
	lastTimedOut    bool
	lastQuestion    string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen over the given questions.
func New(questions []quiz.Question, opts Options) *SessionScreen {
	engine := quiz.NewEngine()
	engine.LoadQuestions(questions)
	return &SessionScreen{
		engine: engine,
		opts:   opts,
	}
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) Init() tea.Cmd {
	s.beginQuestion()
	if s.engine.Done() {
		return func() tea.Msg { return quizEndMsg{} }
	}
	if s.opts.TimeLimit > 0 {
		return tickCmd()
	}
	return nil
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case quizEndMsg:
		return s.handleQuizEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.opts.TimeLimit == 0 || s.showingFeedback || s.showingQuit || s.engine.Done() {
		return s, nil
	}

	s.remaining -= time.Second
	if s.remaining > 0 {
		return s, tickCmd()
	}

	// Out of time: the question counts as unanswered. The reveal marks
	// no option as chosen.
	if q := s.engine.CurrentQuestion(); q != nil {
		s.lastQuestion = q.Text
	}
	s.engine.SubmitAnswer(quiz.NoAnswer, s.opts.TimeLimit.Seconds())
	s.mc.Submitted = true
	s.mc.ChosenIndex = -1
	s.lastCorrect = false
	s.lastTimedOut = true
	s.showingFeedback = true
	return s, nil
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.lastTimedOut = false

	if s.engine.Done() {
		return s, func() tea.Msg { return quizEndMsg{} }
	}

	s.beginQuestion()
	if s.opts.TimeLimit > 0 {
		return s, tickCmd()
	}
	return s, nil
}

func (s *SessionScreen) handleQuizEnd() (screen.Screen, tea.Cmd) {
	result := s.engine.FinalResults()
	summaryScreen := summary.New(result, s.opts.Store, s.opts.Category, s.opts.Difficulty, s.opts.Restart)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summaryScreen}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
			if s.opts.TimeLimit > 0 && !s.showingFeedback {
				return s, tickCmd()
			}
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	q := s.engine.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuit = true
		return s, nil

	case "enter":
		return s.submit()

	case "up", "k":
		s.mc.Select(s.mc.Selected - 1)
		return s, nil

	case "down", "j":
		s.mc.Select(s.mc.Selected + 1)
		return s, nil

	case "1", "2", "3", "4":
		if s.mc.Select(int(key[0] - '1')) {
			return s.submit()
		}
		return s, nil
	}

	return s, nil
}

// submit grades the current selection and shows feedback.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.engine.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	elapsed := time.Since(s.questionStart).Seconds()
	s.lastQuestion = q.Text
	s.lastCorrect = s.engine.SubmitAnswer(s.mc.Selected, elapsed)
	s.mc.Submit()
	s.showingFeedback = true
	return s, nil
}

// beginQuestion resets per-question presentation state.
func (s *SessionScreen) beginQuestion() {
	if q := s.engine.CurrentQuestion(); q != nil {
		s.mc = components.NewMultiChoice("", q.ShuffledAnswers, q.CorrectIndex)
	}
	s.questionStart = time.Now()
	s.remaining = s.opts.TimeLimit
}

// tickCmd returns a 1-second countdown tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
