package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Abubakar-88/jugjiggasha/internal/apiclient"
	"github.com/Abubakar-88/jugjiggasha/internal/models"
	"github.com/Abubakar-88/jugjiggasha/internal/offline"
)

// Question status filters for the admin list.
const (
	StatusAll        = "all"
	StatusAnswered   = "answered"
	StatusUnanswered = "unanswered"
)

// QuestionFilter narrows the admin question list.
type QuestionFilter struct {
	Query  string
	Status string
	Page   int
	Size   int
}

// QuestionServiceProvider defines the interface for question services.
// The boolean result on reads reports whether the data was served from the
// offline cache because the upstream API was unreachable.
type QuestionServiceProvider interface {
	List(ctx context.Context) ([]models.Question, bool, error)
	ListPage(ctx context.Context, q models.PageQuery) (models.Page[models.Question], bool, error)
	Get(ctx context.Context, id string) (models.Question, error)
	Search(ctx context.Context, query string) ([]models.Question, bool, error)
	ByCategory(ctx context.Context, categoryID string) ([]models.Question, bool, error)
	Answered(ctx context.Context) ([]models.Question, bool, error)
	Unanswered(ctx context.Context) ([]models.Question, bool, error)
	Submit(ctx context.Context, sub models.QuestionSubmission) (models.Question, error)
	Update(ctx context.Context, id string, question models.Question) (models.Question, error)
	Delete(ctx context.Context, id string) error
	Answer(ctx context.Context, id, answer string) (models.Question, error)
	AdminList(ctx context.Context, filter QuestionFilter) (models.Page[models.Question], bool, error)
}

// QuestionService fronts the upstream question API. Reads go network-first
// through the offline engine so the last good response keeps serving when
// the upstream is down; mutations go straight upstream.
type QuestionService struct {
	api    *apiclient.Client
	engine *offline.Engine
	events EventServiceProvider
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(api *apiclient.Client, engine *offline.Engine, events EventServiceProvider) *QuestionService {
	return &QuestionService{api: api, engine: engine, events: events}
}

// List retrieves all questions.
func (s *QuestionService) List(ctx context.Context) ([]models.Question, bool, error) {
	return s.fetchList(ctx, "questions", s.api.ListQuestions)
}

// ListPage retrieves one page of questions from the upstream.
func (s *QuestionService) ListPage(ctx context.Context, q models.PageQuery) (models.Page[models.Question], bool, error) {
	var page models.Page[models.Question]
	key := "questions:page:" + pageKey(q)
	result, err := s.engine.FetchAPI(ctx, key, func(ctx context.Context) (offline.Entry, error) {
		p, err := s.api.ListQuestionsPage(ctx, q)
		if err != nil {
			return offline.Entry{}, err
		}
		return encodeEntry(p)
	})
	if err != nil {
		return models.Page[models.Question]{}, false, err
	}
	err = json.Unmarshal(result.Entry.Body, &page)
	return page, result.FromCache, err
}

// Get retrieves a single question.
func (s *QuestionService) Get(ctx context.Context, id string) (models.Question, error) {
	var question models.Question
	result, err := s.engine.FetchAPI(ctx, "questions:"+id, func(ctx context.Context) (offline.Entry, error) {
		q, err := s.api.GetQuestion(ctx, id)
		if err != nil {
			return offline.Entry{}, err
		}
		return encodeEntry(q)
	})
	if err != nil {
		return models.Question{}, err
	}
	err = json.Unmarshal(result.Entry.Body, &question)
	return question, err
}

// Search performs a free-text search upstream.
func (s *QuestionService) Search(ctx context.Context, query string) ([]models.Question, bool, error) {
	return s.fetchList(ctx, "questions:search:"+query, func(ctx context.Context) ([]models.Question, error) {
		return s.api.SearchQuestions(ctx, query)
	})
}

// ByCategory retrieves the questions filed under a category.
func (s *QuestionService) ByCategory(ctx context.Context, categoryID string) ([]models.Question, bool, error) {
	return s.fetchList(ctx, "questions:category:"+categoryID, func(ctx context.Context) ([]models.Question, error) {
		return s.api.QuestionsByCategory(ctx, categoryID)
	})
}

// Answered retrieves all answered questions.
func (s *QuestionService) Answered(ctx context.Context) ([]models.Question, bool, error) {
	return s.fetchList(ctx, "questions:answered", s.api.AnsweredQuestions)
}

// Unanswered retrieves all questions awaiting an answer.
func (s *QuestionService) Unanswered(ctx context.Context) ([]models.Question, bool, error) {
	return s.fetchList(ctx, "questions:unanswered", s.api.UnansweredQuestions)
}

// Submit forwards an already-validated submission upstream.
func (s *QuestionService) Submit(ctx context.Context, sub models.QuestionSubmission) (models.Question, error) {
	question, err := s.api.CreateQuestion(ctx, sub)
	if err != nil {
		return models.Question{}, err
	}
	s.events.CreateEvent("question.submit", "info", "Question submitted: "+question.Title, &question.ID)
	return question, nil
}

// Update replaces a question's editable fields.
func (s *QuestionService) Update(ctx context.Context, id string, question models.Question) (models.Question, error) {
	updated, err := s.api.UpdateQuestion(ctx, id, question)
	if err != nil {
		return models.Question{}, err
	}
	s.events.CreateEvent("question.update", "info", "Question updated: "+updated.Title, &id)
	return updated, nil
}

// Delete removes a question.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteQuestion(ctx, id); err != nil {
		return err
	}
	s.events.CreateEvent("question.delete", "info", "Question deleted", &id)
	return nil
}

// Answer records an admin's answer against a question.
func (s *QuestionService) Answer(ctx context.Context, id, answer string) (models.Question, error) {
	question, err := s.api.AnswerQuestion(ctx, id, answer)
	if err != nil {
		return models.Question{}, err
	}
	s.events.CreateEvent("question.answer", "info", "Question answered: "+question.Title, &id)
	return question, nil
}

// AdminList filters and paginates the full question set for the admin panel.
func (s *QuestionService) AdminList(ctx context.Context, filter QuestionFilter) (models.Page[models.Question], bool, error) {
	questions, fromCache, err := s.List(ctx)
	if err != nil {
		return models.Page[models.Question]{}, false, err
	}

	filtered := FilterByStatus(questions, filter.Status)
	filtered = FilterByText(filtered, filter.Query)

	size := filter.Size
	if size <= 0 {
		size = 5
	}
	return models.Paginate(filtered, filter.Page, size), fromCache, nil
}

// fetchList runs a list read through the offline engine.
func (s *QuestionService) fetchList(ctx context.Context, key string, fetch func(context.Context) ([]models.Question, error)) ([]models.Question, bool, error) {
	result, err := s.engine.FetchAPI(ctx, key, func(ctx context.Context) (offline.Entry, error) {
		questions, err := fetch(ctx)
		if err != nil {
			return offline.Entry{}, err
		}
		return encodeEntry(questions)
	})
	if err != nil {
		return nil, false, err
	}

	var questions []models.Question
	err = json.Unmarshal(result.Entry.Body, &questions)
	return questions, result.FromCache, err
}

// FilterByStatus keeps exactly the answered or unanswered subset. Any other
// status value keeps everything.
func FilterByStatus(questions []models.Question, status string) []models.Question {
	switch status {
	case StatusAnswered:
		out := make([]models.Question, 0, len(questions))
		for _, q := range questions {
			if q.IsAnswered {
				out = append(out, q)
			}
		}
		return out
	case StatusUnanswered:
		out := make([]models.Question, 0, len(questions))
		for _, q := range questions {
			if !q.IsAnswered {
				out = append(out, q)
			}
		}
		return out
	default:
		return questions
	}
}

// FilterByText keeps questions whose title, description or submitter name
// contains the query, case-insensitively. An empty query keeps everything.
func FilterByText(questions []models.Question, query string) []models.Question {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return questions
	}

	out := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Title), query) ||
			strings.Contains(strings.ToLower(q.Description), query) ||
			strings.Contains(strings.ToLower(q.UserName), query) {
			out = append(out, q)
		}
	}
	return out
}

// encodeEntry wraps a value as a cached JSON response body.
func encodeEntry(v interface{}) (offline.Entry, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return offline.Entry{}, err
	}
	return offline.Entry{
		Status:      http.StatusOK,
		ContentType: "application/json",
		Body:        body,
	}, nil
}

// pageKey renders a stable cache key for a page query.
func pageKey(q models.PageQuery) string {
	b, _ := json.Marshal(q)
	return string(b)
}
