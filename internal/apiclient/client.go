// Package apiclient is a thin wrapper around the upstream Jug Jiggasha REST
// API for questions and categories. Paginated reads are served from a short
// TTL cache; failures propagate to the caller unchanged with no retry.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
)

// Client issues HTTP calls against the upstream API.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *ResponseCache
}

// New creates a Client for the given base URL, e.g.
// "http://localhost/Jugjiggasha/api".
func New(baseURL string, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   NewResponseCache(cacheTTL),
	}
}

// Cache exposes the response cache, mostly for invalidation by callers that
// mutate upstream state outside this package.
func (c *Client) Cache() *ResponseCache { return c.cache }

// ListQuestions retrieves all questions.
func (c *Client) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var out []models.Question
	err := c.getCached(ctx, "questions", &out)
	return out, err
}

// ListQuestionsPage retrieves one page of questions.
func (c *Client) ListQuestionsPage(ctx context.Context, q models.PageQuery) (models.Page[models.Question], error) {
	var out models.Page[models.Question]
	err := c.getCached(ctx, "questions"+pageParams(q), &out)
	return out, err
}

// GetQuestion retrieves a single question by ID.
func (c *Client) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	var out models.Question
	err := c.do(ctx, http.MethodGet, "/questions/"+id, nil, &out)
	return out, err
}

// CreateQuestion submits a new question. The questions cache family is
// invalidated so subsequent lists see the submission.
func (c *Client) CreateQuestion(ctx context.Context, sub models.QuestionSubmission) (models.Question, error) {
	var out models.Question
	if err := c.do(ctx, http.MethodPost, "/questions", sub, &out); err != nil {
		return models.Question{}, err
	}
	c.cache.Invalidate("questions")
	return out, nil
}

// UpdateQuestion replaces a question's editable fields.
func (c *Client) UpdateQuestion(ctx context.Context, id string, question models.Question) (models.Question, error) {
	var out models.Question
	if err := c.do(ctx, http.MethodPut, "/questions/"+id, question, &out); err != nil {
		return models.Question{}, err
	}
	c.cache.Invalidate("questions")
	return out, nil
}

// DeleteQuestion removes a question.
func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/questions/"+id, nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate("questions")
	return nil
}

// SearchQuestions performs a free-text search.
func (c *Client) SearchQuestions(ctx context.Context, query string) ([]models.Question, error) {
	var out []models.Question
	err := c.getCached(ctx, "questions/search?q="+url.QueryEscape(query), &out)
	return out, err
}

// QuestionsByCategory retrieves the questions filed under a category.
func (c *Client) QuestionsByCategory(ctx context.Context, categoryID string) ([]models.Question, error) {
	var out []models.Question
	err := c.getCached(ctx, "questions/category/"+categoryID, &out)
	return out, err
}

// AnsweredQuestions retrieves all answered questions.
func (c *Client) AnsweredQuestions(ctx context.Context) ([]models.Question, error) {
	var out []models.Question
	err := c.getCached(ctx, "questions/answered", &out)
	return out, err
}

// UnansweredQuestions retrieves all questions still awaiting an answer.
func (c *Client) UnansweredQuestions(ctx context.Context) ([]models.Question, error) {
	var out []models.Question
	err := c.getCached(ctx, "questions/unanswered", &out)
	return out, err
}

// AnswerQuestion records an admin's answer against a question.
func (c *Client) AnswerQuestion(ctx context.Context, id, answer string) (models.Question, error) {
	var out models.Question
	payload := map[string]string{"answer": answer}
	if err := c.do(ctx, http.MethodPost, "/questions/"+id+"/answer", payload, &out); err != nil {
		return models.Question{}, err
	}
	c.cache.Invalidate("questions")
	return out, nil
}

// ListCategories retrieves all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.getCached(ctx, "categories", &out)
	return out, err
}

// GetCategory retrieves a single category by ID.
func (c *Client) GetCategory(ctx context.Context, id string) (models.Category, error) {
	var out models.Category
	err := c.do(ctx, http.MethodGet, "/categories/"+id, nil, &out)
	return out, err
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, payload models.CategoryPayload) (models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", payload, &out); err != nil {
		return models.Category{}, err
	}
	c.cache.Invalidate("categories")
	return out, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id string, payload models.CategoryPayload) (models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+id, payload, &out); err != nil {
		return models.Category{}, err
	}
	c.cache.Invalidate("categories")
	return out, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate("categories")
	return nil
}

// getCached serves a GET from the TTL cache, hitting the network on a miss.
func (c *Client) getCached(ctx context.Context, key string, v interface{}) error {
	if body, ok := c.cache.Get(key); ok {
		return json.Unmarshal(body, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+key, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	c.cache.Put(key, body)
	return json.Unmarshal(body, v)
}

// do issues a request with an optional JSON body, decoding into v when non-nil.
func (c *Client) do(ctx context.Context, method, path string, payload, v interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Body: string(data)}
	}
	if v == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// pageParams renders the standard pagination query string.
func pageParams(q models.PageQuery) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.SortDirection != "" {
		params.Set("sortDirection", q.SortDirection)
	}
	return "?" + params.Encode()
}

// APIError carries an upstream non-2xx response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API returned %d: %s", e.Status, e.Body)
}
