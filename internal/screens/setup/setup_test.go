package setup

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asheth/quizdeck/internal/opentdb"
	"github.com/asheth/quizdeck/internal/quiz"
	"github.com/asheth/quizdeck/internal/router"
	"github.com/asheth/quizdeck/internal/screens/session"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSetup_DefaultState(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)

	if s.focused != fieldAmount {
		t.Error("amount field should be focused first")
	}
	if got, err := s.amount.NumericValue(); err != nil || got != 10 {
		t.Errorf("default amount = %d (%v), want 10", got, err)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Any Category") {
		t.Error("expected default category label")
	}
	if !strings.Contains(view, "Off") {
		t.Error("expected timer off by default")
	}
}

func TestSetup_FieldNavigationWraps(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)

	for i := 0; i < fieldCount; i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	if s.focused != fieldAmount {
		t.Errorf("focus = %d, want wrap back to amount", s.focused)
	}

	s.Update(specialKey(tea.KeyUp))
	if s.focused != fieldStart {
		t.Errorf("focus = %d, want start button", s.focused)
	}
}

func TestSetup_DifficultyCycles(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)
	s.setFocus(fieldDifficulty)

	s.Update(specialKey(tea.KeyRight))
	if s.difficultyValue() != "easy" {
		t.Errorf("difficulty = %q, want easy", s.difficultyValue())
	}

	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if s.difficultyValue() != "hard" {
		t.Errorf("difficulty = %q, want hard after wrapping left", s.difficultyValue())
	}
}

func TestSetup_TimerCycles(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)
	s.setFocus(fieldTimer)

	s.Update(specialKey(tea.KeyRight))
	if timerChoices[s.timer] != 10 {
		t.Errorf("timer = %d, want 10", timerChoices[s.timer])
	}

	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if timerChoices[s.timer] != 60 {
		t.Errorf("timer = %d, want 60 after wrapping left", timerChoices[s.timer])
	}
}

func TestSetup_CategoriesLoaded(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)
	s.Update(categoriesLoadedMsg{Categories: []opentdb.Category{
		{ID: 17, Name: "Science & Nature"},
	}})

	s.setFocus(fieldCategory)
	s.Update(specialKey(tea.KeyRight))
	if s.categoryLabel() != "Science & Nature" {
		t.Errorf("category = %q, want Science & Nature", s.categoryLabel())
	}

	s.Update(specialKey(tea.KeyRight))
	if s.categoryLabel() != "" {
		t.Errorf("category = %q, want wrap back to any", s.categoryLabel())
	}
}

func TestSetup_InvalidAmountRejected(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)
	s.amount.Model.SetValue("0")
	s.setFocus(fieldStart)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("invalid amount should not start a fetch")
	}
	if s.errMsg == "" {
		t.Error("expected a validation error")
	}
}

func TestSetup_QuestionsLoadedStartsSession(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)
	s.fetching = true

	questions := []quiz.Question{{
		Text:             "What is the capital of France?",
		CorrectAnswer:    "Paris",
		IncorrectAnswers: []string{"London", "Berlin", "Madrid"},
	}}
	_, cmd := s.Update(questionsLoadedMsg{Questions: questions})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*session.SessionScreen); !ok {
		t.Fatalf("expected a session screen, got %T", replace.Screen)
	}
	if s.fetching {
		t.Error("fetching flag should clear once questions arrive")
	}
}

func TestSetup_FetchErrorShown(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)
	s.fetching = true
	s.Update(questionsLoadedMsg{Err: errString("no results")})

	if s.fetching {
		t.Error("fetching flag should clear on error")
	}
	if !strings.Contains(s.View(80, 24), "no results") {
		t.Error("expected fetch error in view")
	}
}

func TestSetup_EscPops(t *testing.T) {
	s := New(opentdb.NewClient(nil), nil)
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

type errString string

func (e errString) Error() string { return string(e) }
