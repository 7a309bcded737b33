package summary

import (
	"image/color"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asheth/quizdeck/internal/quiz"
	"github.com/asheth/quizdeck/internal/router"
	"github.com/asheth/quizdeck/internal/screen"
	"github.com/asheth/quizdeck/internal/ui/theme"
)

func testResult() quiz.Result {
	return quiz.Result{
		Score:          7,
		TotalQuestions: 10,
		Percentage:     70,
		TotalTime:      48.2,
		AverageTime:    4.8,
		Answers: []quiz.AnswerRecord{
			{QuestionText: "Capital of France?", UserAnswer: "Paris", CorrectAnswer: "Paris", Correct: true, TimeTaken: 3.1},
			{QuestionText: "Largest planet?", UserAnswer: "Saturn", CorrectAnswer: "Jupiter", Correct: false, TimeTaken: 6.4},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(), nil, "", "", nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult(), nil, "Science", "medium", nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "7/10") {
		t.Error("expected score in summary view")
	}
	if !strings.Contains(view, "Good job!") {
		t.Error("expected the 60-79% rank message")
	}
	if !strings.Contains(view, "Science") {
		t.Error("expected category in summary view")
	}
}

func TestSummaryScreen_RankMessages(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "Excellent work!"},
		{80, "Excellent work!"},
		{79.9, "Good job!"},
		{60, "Good job!"},
		{59, "Keep practicing!"},
		{0, "Keep practicing!"},
	}
	for _, tc := range cases {
		if got := rankMessage(tc.pct); !strings.Contains(got, tc.want) {
			t.Errorf("rankMessage(%v) = %q, want containing %q", tc.pct, got, tc.want)
		}
	}
}

func TestSummaryScreen_RankColors(t *testing.T) {
	cases := []struct {
		pct  float64
		want color.Color
	}{
		{95, theme.Gold},
		{80, theme.Gold},
		{70, theme.Success},
		{40, theme.Secondary},
	}
	for _, tc := range cases {
		if got := rankColor(tc.pct); got != tc.want {
			t.Errorf("rankColor(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestSummaryScreen_DetailsToggle(t *testing.T) {
	s := New(testResult(), nil, "", "", nil)

	if strings.Contains(s.View(80, 24), "Largest planet?") {
		t.Error("details should be hidden initially")
	}

	s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	view := s.View(80, 24)
	if !strings.Contains(view, "Largest planet?") {
		t.Error("expected per-question details after toggle")
	}
	if !strings.Contains(view, "Jupiter") {
		t.Error("expected correct answer for the missed question")
	}
}

func TestSummaryScreen_SaveWithoutStore(t *testing.T) {
	s := New(testResult(), nil, "", "", nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd != nil {
		t.Error("save should be a no-op without a store")
	}
}

func TestSummaryScreen_EscGoesHome(t *testing.T) {
	s := New(testResult(), nil, "", "", nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

// stubScreen stands in for the setup screen in the play-again flow.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "setup" }
func (s *stubScreen) Title() string                           { return "New Quiz" }

func TestSummaryScreen_PlayAgain(t *testing.T) {
	called := 0
	s := New(testResult(), nil, "", "", func() screen.Screen {
		called++
		return &stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if called != 1 {
		t.Errorf("restart factory called %d times, want 1", called)
	}
}
