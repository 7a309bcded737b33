package setup

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asheth/quizdeck/internal/opentdb"
	"github.com/asheth/quizdeck/internal/quiz"
	"github.com/asheth/quizdeck/internal/router"
	"github.com/asheth/quizdeck/internal/screen"
	"github.com/asheth/quizdeck/internal/screens/session"
	"github.com/asheth/quizdeck/internal/store"
	"github.com/asheth/quizdeck/internal/ui/components"
	"github.com/asheth/quizdeck/internal/ui/layout"
	"github.com/asheth/quizdeck/internal/ui/theme"
)

// Form fields, top to bottom.
const (
	fieldAmount = iota
	fieldCategory
	fieldDifficulty
	fieldTimer
	fieldStart
	fieldCount
)

// timerChoices are the per-question time limits offered, in seconds.
// 0 disables the timer.
var timerChoices = []int{0, 10, 15, 20, 30, 45, 60}

var difficultyChoices = []string{"Any", "Easy", "Medium", "Hard"}

// categoriesLoadedMsg is sent when the category list fetch completes.
type categoriesLoadedMsg struct {
	Categories []opentdb.Category
	Err        error
}

// questionsLoadedMsg is sent when the question fetch completes.
type questionsLoadedMsg struct {
	Questions []quiz.Question
	Err       error
}

// SetupScreen collects quiz options and fetches questions before
// handing off to the session screen.
type SetupScreen struct {
	client *opentdb.Client
	store  *store.Store

	amount     components.TextInput
	categories []opentdb.Category
	category   int // index into the rendered category list, 0 = any
	difficulty int // index into difficultyChoices
	timer      int // index into timerChoices

	focused  int
	fetching bool
	errMsg   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen backed by the given trivia client.
func New(client *opentdb.Client, st *store.Store) *SetupScreen {
	amount := components.NewTextInput("10", true, 2)
	amount.Model.SetValue("10")
	amount.Focus()

	return &SetupScreen{
		client: client,
		store:  st,
		amount: amount,
	}
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) Init() tea.Cmd {
	return tea.Batch(s.loadCategories(), s.amount.Init())
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.fetching {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Field"},
		{Key: "←/→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		// A failed category fetch is not fatal: the quiz can still run
		// with "Any Category".
		if msg.Err == nil {
			s.categories = msg.Categories
		}
		return s, nil

	case questionsLoadedMsg:
		s.fetching = false
		if msg.Err != nil {
			s.errMsg = fetchErrorText(msg.Err)
			return s, nil
		}
		client, st := s.client, s.store
		sessionScreen := session.New(msg.Questions, session.Options{
			Store:      st,
			Category:   s.categoryLabel(),
			Difficulty: s.difficultyValue(),
			TimeLimit:  time.Duration(timerChoices[s.timer]) * time.Second,
			Restart: func() screen.Screen {
				return New(client, st)
			},
		})
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: sessionScreen}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focused == fieldAmount && !s.fetching {
		var cmd tea.Cmd
		s.amount, cmd = s.amount.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.fetching {
		return s, nil
	}

	key := msg.String()

	if s.errMsg != "" {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.errMsg = ""
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "shift+tab":
		s.setFocus((s.focused + fieldCount - 1) % fieldCount)
		return s, nil

	case "down", "tab":
		s.setFocus((s.focused + 1) % fieldCount)
		return s, nil

	case "left":
		s.cycle(-1)
		return s, nil

	case "right":
		s.cycle(1)
		return s, nil

	case "enter":
		if s.focused == fieldStart {
			return s.startQuiz()
		}
		s.setFocus((s.focused + 1) % fieldCount)
		return s, nil
	}

	if s.focused == fieldAmount {
		var cmd tea.Cmd
		s.amount, cmd = s.amount.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) setFocus(field int) {
	s.focused = field
	if field == fieldAmount {
		s.amount.Focus()
	} else {
		s.amount.Blur()
	}
}

// cycle steps the focused picker field left or right.
func (s *SetupScreen) cycle(dir int) {
	switch s.focused {
	case fieldCategory:
		n := len(s.categories) + 1 // plus the "Any Category" entry
		s.category = (s.category + dir + n) % n
	case fieldDifficulty:
		n := len(difficultyChoices)
		s.difficulty = (s.difficulty + dir + n) % n
	case fieldTimer:
		n := len(timerChoices)
		s.timer = (s.timer + dir + n) % n
	}
}

func (s *SetupScreen) startQuiz() (screen.Screen, tea.Cmd) {
	amount, err := s.amount.NumericValue()
	if err != nil || amount < 1 || amount > opentdb.MaxAmount {
		s.errMsg = fmt.Sprintf("Enter a question count between 1 and %d.", opentdb.MaxAmount)
		return s, nil
	}

	s.fetching = true
	req := opentdb.Request{
		Amount:     amount,
		Difficulty: s.difficultyValue(),
	}
	if s.category > 0 && s.category <= len(s.categories) {
		req.Category = s.categories[s.category-1].ID
	}

	client := s.client
	return s, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		questions, err := client.FetchQuestions(ctx, req)
		if err != nil {
			return questionsLoadedMsg{Err: err}
		}
		return questionsLoadedMsg{Questions: questions}
	}
}

// categoryLabel returns the display name of the selected category,
// or "" for any.
func (s *SetupScreen) categoryLabel() string {
	if s.category == 0 || s.category > len(s.categories) {
		return ""
	}
	return s.categories[s.category-1].Name
}

// difficultyValue returns the request value for the selected
// difficulty, or "" for any.
func (s *SetupScreen) difficultyValue() string {
	if s.difficulty == 0 {
		return ""
	}
	return strings.ToLower(difficultyChoices[s.difficulty])
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.fetching {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Fetching questions..."))
	}

	if s.errMsg != "" {
		body := theme.Body.Foreground(theme.Error).Render(s.errMsg) + "\n\n" +
			theme.Hint.Render("press any key to adjust, esc to go back")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			components.Card(body, cw))
	}

	var rows []string
	rows = append(rows, s.renderField(fieldAmount, "Questions", s.amount.View()))
	rows = append(rows, s.renderField(fieldCategory, "Category", s.renderCategory()))
	rows = append(rows, s.renderField(fieldDifficulty, "Difficulty", difficultyChoices[s.difficulty]))
	rows = append(rows, s.renderField(fieldTimer, "Timer", timerLabel(timerChoices[s.timer])))
	rows = append(rows, "")
	rows = append(rows, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.MenuButton("START", s.focused == fieldStart, 18)))

	content := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SetupScreen) renderField(field int, label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	prefix := "  "
	if s.focused == field {
		labelStyle = labelStyle.Foreground(theme.Secondary).Bold(true)
		prefix = "▸ "
	}
	line := prefix + labelStyle.Render(label) + "  " + valueStyle.Render(value)
	if s.focused == field && field != fieldAmount && field != fieldStart {
		line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ◂ ▸")
	}
	return line
}

func (s *SetupScreen) renderCategory() string {
	if s.category == 0 {
		return "Any Category"
	}
	if s.category <= len(s.categories) {
		return s.categories[s.category-1].Name
	}
	return "Any Category"
}

func timerLabel(secs int) string {
	if secs == 0 {
		return "Off"
	}
	return fmt.Sprintf("%ds per question", secs)
}

// fetchErrorText maps fetch failures to a short user-facing message.
func fetchErrorText(err error) string {
	return "Could not fetch questions: " + err.Error()
}

// loadCategories fetches the category list asynchronously.
func (s *SetupScreen) loadCategories() tea.Cmd {
	client := s.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cats, err := client.Categories(ctx)
		return categoriesLoadedMsg{Categories: cats, Err: err}
	}
}
