// Package opentdb fetches multiple-choice questions from the Open Trivia
// Database (https://opentdb.com) and decodes them into plain-text quiz
// questions.
package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/asheth/quizdeck/internal/quiz"
)

const (
	apiURL        = "https://opentdb.com/api.php"
	categoriesURL = "https://opentdb.com/api_category.php"

	// DefaultAmount is used when a request asks for a non-positive count.
	DefaultAmount = 10

	// MaxAmount is the largest batch the API serves per request.
	MaxAmount = 50

	defaultTimeout = 10 * time.Second
)

// Request filters a question fetch. The zero value requests DefaultAmount
// questions from any category at any difficulty.
type Request struct {
	Amount     int
	Category   int    // OpenTDB category ID, 0 = any
	Difficulty string // "easy"|"medium"|"hard", "" = any
}

// Category is one entry from the OpenTDB category index.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// rawQuestion mirrors the OpenTDB question payload. Text fields arrive
// HTML-entity-encoded.
type rawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type questionsResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []rawQuestion `json:"results"`
}

type categoriesResponse struct {
	TriviaCategories []Category `json:"trivia_categories"`
}

// Client talks to the OpenTDB HTTP API.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client. A nil httpClient gets a default with a
// 10-second timeout.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{httpClient: httpClient}
}

// FetchQuestions retrieves a batch of multiple-choice questions matching the
// request filter, with all text fields entity-decoded. A non-zero API
// response code is an error.
func (c *Client) FetchQuestions(ctx context.Context, req Request) ([]quiz.Question, error) {
	amount := req.Amount
	if amount <= 0 {
		amount = DefaultAmount
	}
	if amount > MaxAmount {
		amount = MaxAmount
	}

	params := url.Values{}
	params.Set("amount", strconv.Itoa(amount))
	params.Set("type", "multiple")
	if req.Category > 0 {
		params.Set("category", strconv.Itoa(req.Category))
	}
	if req.Difficulty != "" {
		params.Set("difficulty", req.Difficulty)
	}

	var payload questionsResponse
	if err := c.getJSON(ctx, apiURL+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}
	if payload.ResponseCode != 0 {
		return nil, &ResponseError{Code: payload.ResponseCode}
	}

	questions := make([]quiz.Question, 0, len(payload.Results))
	for _, raw := range payload.Results {
		questions = append(questions, decodeQuestion(raw))
	}
	return questions, nil
}

// Categories retrieves the OpenTDB category index.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var payload categoriesResponse
	if err := c.getJSON(ctx, categoriesURL, &payload); err != nil {
		return nil, err
	}
	for i := range payload.TriviaCategories {
		payload.TriviaCategories[i].Name = html.UnescapeString(payload.TriviaCategories[i].Name)
	}
	return payload.TriviaCategories, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("opentdb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("opentdb returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode opentdb response: %w", err)
	}
	return nil
}

func decodeQuestion(raw rawQuestion) quiz.Question {
	incorrect := make([]string, len(raw.IncorrectAnswers))
	for i, a := range raw.IncorrectAnswers {
		incorrect[i] = html.UnescapeString(a)
	}
	return quiz.Question{
		Text:             html.UnescapeString(raw.Question),
		CorrectAnswer:    html.UnescapeString(raw.CorrectAnswer),
		IncorrectAnswers: incorrect,
		Category:         html.UnescapeString(raw.Category),
		Difficulty:       raw.Difficulty,
	}
}

// ResponseError is a non-zero OpenTDB response code.
type ResponseError struct {
	Code int
}

func (e *ResponseError) Error() string {
	switch e.Code {
	case 1:
		return "opentdb: not enough questions for this filter"
	case 2:
		return "opentdb: invalid request parameter"
	case 5:
		return "opentdb: rate limited, retry in a few seconds"
	default:
		return fmt.Sprintf("opentdb: response code %d", e.Code)
	}
}
