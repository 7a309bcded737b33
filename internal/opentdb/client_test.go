package opentdb

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient(&http.Client{Transport: rt})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func TestFetchQuestions_BuildsQuery(t *testing.T) {
	var seen map[string]string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		q := r.URL.Query()
		seen = map[string]string{
			"amount":     q.Get("amount"),
			"type":       q.Get("type"),
			"category":   q.Get("category"),
			"difficulty": q.Get("difficulty"),
		}
		return jsonResponse(http.StatusOK, `{"response_code":0,"results":[]}`), nil
	}))

	_, err := client.FetchQuestions(context.Background(), Request{
		Amount:     5,
		Category:   18,
		Difficulty: "hard",
	})
	require.NoError(t, err)

	assert.Equal(t, "5", seen["amount"])
	assert.Equal(t, "multiple", seen["type"])
	assert.Equal(t, "18", seen["category"])
	assert.Equal(t, "hard", seen["difficulty"])
}

func TestFetchQuestions_DefaultsAndClampsAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   string
	}{
		{"zero uses default", 0, "10"},
		{"negative uses default", -3, "10"},
		{"above max clamps", 500, "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenAmount string
			client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				seenAmount = r.URL.Query().Get("amount")
				return jsonResponse(http.StatusOK, `{"response_code":0,"results":[]}`), nil
			}))

			_, err := client.FetchQuestions(context.Background(), Request{Amount: tt.amount})
			require.NoError(t, err)
			assert.Equal(t, tt.want, seenAmount)
		})
	}
}

func TestFetchQuestions_DecodesEntities(t *testing.T) {
	const body = `{"response_code":0,"results":[{
		"type":"multiple",
		"difficulty":"medium",
		"category":"Science &amp; Nature",
		"question":"What&#039;s H2O?",
		"correct_answer":"Water",
		"incorrect_answers":["Gold &amp; Silver","Salt","Air"]
	}]}`

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	}))

	questions, err := client.FetchQuestions(context.Background(), Request{Amount: 1})
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "What's H2O?", q.Text)
	assert.Equal(t, "Water", q.CorrectAnswer)
	assert.Equal(t, "Science & Nature", q.Category)
	assert.Equal(t, []string{"Gold & Silver", "Salt", "Air"}, q.IncorrectAnswers)
	assert.Equal(t, "medium", q.Difficulty)
}

func TestFetchQuestions_NonZeroResponseCode(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"response_code":1,"results":[]}`), nil
	}))

	_, err := client.FetchQuestions(context.Background(), Request{Amount: 50})
	require.Error(t, err)

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, 1, respErr.Code)
}

func TestFetchQuestions_NonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, ""), nil
	}))

	_, err := client.FetchQuestions(context.Background(), Request{Amount: 5})
	assert.Error(t, err)
}

func TestFetchQuestions_BadJSON(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "not-json"), nil
	}))

	_, err := client.FetchQuestions(context.Background(), Request{Amount: 5})
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	const body = `{"trivia_categories":[
		{"id":9,"name":"General Knowledge"},
		{"id":14,"name":"Entertainment: Television &amp; Film"}
	]}`

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	}))

	cats, err := client.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, 9, cats[0].ID)
	assert.Equal(t, "Entertainment: Television & Film", cats[1].Name)
}
