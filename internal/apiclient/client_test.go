package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
)

func newUpstream(t *testing.T, hits *int64, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestListQuestionsServedFromCacheWithinWindow(t *testing.T) {
	var hits int64
	server := newUpstream(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/questions", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Question{{ID: "q1", Title: "শিরোনাম"}})
	})

	client := New(server.URL, 3*time.Minute)

	first, err := client.ListQuestions(context.Background())
	require.NoError(t, err)
	second, err := client.ListQuestions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt64(&hits))
}

func TestCreateQuestionInvalidatesQuestionCache(t *testing.T) {
	var hits int64
	server := newUpstream(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Question{ID: "q2"})
			return
		}
		json.NewEncoder(w).Encode([]models.Question{})
	})

	client := New(server.URL, 3*time.Minute)

	_, err := client.ListQuestions(context.Background())
	require.NoError(t, err)

	_, err = client.CreateQuestion(context.Background(), models.QuestionSubmission{Title: "নতুন প্রশ্নের শিরোনাম"})
	require.NoError(t, err)

	_, err = client.ListQuestions(context.Background())
	require.NoError(t, err)

	// list, create, list again after invalidation
	assert.EqualValues(t, 3, atomic.LoadInt64(&hits))
}

func TestUpstreamErrorPropagates(t *testing.T) {
	var hits int64
	server := newUpstream(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	client := New(server.URL, time.Minute)

	_, err := client.GetQuestion(context.Background(), "q1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestErrorResponsesAreNotCached(t *testing.T) {
	var hits int64
	server := newUpstream(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	client := New(server.URL, time.Minute)

	_, err := client.ListCategories(context.Background())
	require.Error(t, err)
	_, err = client.ListCategories(context.Background())
	require.Error(t, err)

	assert.EqualValues(t, 2, atomic.LoadInt64(&hits))
}

func TestAnswerQuestionPostsToAnswerRoute(t *testing.T) {
	var hits int64
	server := newUpstream(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/questions/q1/answer", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "জবাব", payload["answer"])

		answer := payload["answer"]
		json.NewEncoder(w).Encode(models.Question{ID: "q1", Answer: &answer, IsAnswered: true})
	})

	client := New(server.URL, time.Minute)

	question, err := client.AnswerQuestion(context.Background(), "q1", "জবাব")
	require.NoError(t, err)
	assert.True(t, question.IsAnswered)
}

func TestPageParamsEncoding(t *testing.T) {
	key := "questions" + pageParams(models.PageQuery{Page: 2, Size: 10, SortBy: "createdAt", SortDirection: "desc"})
	assert.Equal(t, "questions?page=2&size=10&sortBy=createdAt&sortDirection=desc", key)
}
