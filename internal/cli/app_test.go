package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/asheth/quizdeck/internal/opentdb"
	"github.com/asheth/quizdeck/internal/quiz"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const questionsJSON = `{
	"response_code": 0,
	"results": [{
		"type": "multiple",
		"difficulty": "easy",
		"category": "Geography",
		"question": "What is the capital of France?",
		"correct_answer": "Paris",
		"incorrect_answers": ["Lyon", "Nice", "Lille"]
	}]
}`

func fakeClient(body string) *opentdb.Client {
	return opentdb.NewClient(&http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}, nil
		}),
	})
}

func TestRun_PlaysThroughOneQuestion(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("A\n")

	err := Run(context.Background(), in, &out, fakeClient(questionsJSON), nil, Options{Amount: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "What is the capital of France?") {
		t.Error("expected question text in output")
	}
	if !strings.Contains(got, "A. ") || !strings.Contains(got, "D. ") {
		t.Error("expected lettered options A-D")
	}
	if !strings.Contains(got, "QUIZ RESULTS") {
		t.Error("expected results block")
	}
	if !strings.Contains(got, "/1 ") {
		t.Error("expected score out of 1")
	}
}

func TestRun_InvalidInputRetriesThenSkips(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("z\n9\nhello\n")

	err := Run(context.Background(), in, &out, fakeClient(questionsJSON), nil, Options{Amount: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Invalid input") {
		t.Error("expected retry prompt")
	}
	if !strings.Contains(got, "Skipping. Correct answer was Paris") {
		t.Error("expected skip with correct answer after exhausted attempts")
	}
	if !strings.Contains(got, "0/1") {
		t.Error("skipped question must not score")
	}
}

func TestRun_DetailedReview(t *testing.T) {
	var out bytes.Buffer
	// Three bad attempts skip the question, then y asks for the review.
	in := strings.NewReader("z\nz\nz\ny\n")

	err := Run(context.Background(), in, &out, fakeClient(questionsJSON), nil, Options{Amount: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Show detailed results?") {
		t.Error("expected review prompt after results")
	}
	if !strings.Contains(got, "✗ What is the capital of France?") {
		t.Error("expected missed question in review")
	}
	if !strings.Contains(got, "Your answer:    (no answer)") {
		t.Error("expected no-answer sentinel for the skipped question")
	}
	if !strings.Contains(got, "Correct answer: Paris") {
		t.Error("expected correct answer shown for a miss")
	}
	if !strings.Contains(got, "Time taken:") {
		t.Error("expected per-question time in review")
	}
}

func TestRun_ReviewDeclinedOnEOF(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("A\n")

	err := Run(context.Background(), in, &out, fakeClient(questionsJSON), nil, Options{Amount: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "Your answer:") {
		t.Error("review must not print without an explicit yes")
	}
}

func TestRun_FetchErrorPropagates(t *testing.T) {
	var out bytes.Buffer
	body := `{"response_code": 1, "results": []}`

	err := Run(context.Background(), strings.NewReader(""), &out, fakeClient(body), nil, Options{Amount: 1})
	if err == nil {
		t.Fatal("expected error for non-zero response code")
	}
}

func TestReadAnswer(t *testing.T) {
	var out bytes.Buffer

	idx, ok := readAnswer(bufio.NewReader(strings.NewReader(" c \n")), &out, 4)
	if !ok || idx != 2 {
		t.Errorf("readAnswer = %d,%v, want 2,true", idx, ok)
	}

	idx, ok = readAnswer(bufio.NewReader(strings.NewReader("x\nB\n")), &out, 4)
	if !ok || idx != 1 {
		t.Errorf("readAnswer = %d,%v, want 1,true after retry", idx, ok)
	}

	idx, ok = readAnswer(bufio.NewReader(strings.NewReader("E\n")), &out, 4)
	if ok {
		t.Error("out-of-range letter should not be accepted on EOF")
	}
	if idx != quiz.NoAnswer {
		t.Errorf("idx = %d, want sentinel", idx)
	}
}

func TestRankMessage(t *testing.T) {
	if rankMessage(85) != "Excellent work!" {
		t.Error("wrong band for 85")
	}
	if rankMessage(60) != "Good job!" {
		t.Error("wrong band for 60")
	}
	if rankMessage(10) != "Keep practicing!" {
		t.Error("wrong band for 10")
	}
}
