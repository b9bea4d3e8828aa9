package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Abubakar-88/jugjiggasha/internal/models"
	"github.com/Abubakar-88/jugjiggasha/internal/services"
	"github.com/Abubakar-88/jugjiggasha/internal/validation"
)

// Bangla user-facing messages for the ask-question flow.
const (
	msgSubmitSuccess = "আপনার মাসআলাটি সফলভাবে জমা হয়েছে। শীঘ্রই আমাদের আলেমগণ উত্তর প্রদান করবেন ইনশাআল্লাহ।"
	msgSubmitFailure = "প্রশ্ন জমা করতে সমস্যা হয়েছে। দয়া করে পরে আবার চেষ্টা করুন।"
	msgLoadFailure   = "প্রশ্ন লোড করতে সমস্যা হয়েছে"
)

// QuestionHandler handles HTTP requests related to questions.
type QuestionHandler struct {
	service services.QuestionServiceProvider
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(service services.QuestionServiceProvider) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// GetAll handles the request to get all questions, paginated when the page
// parameter is present.
func (h *QuestionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("page") != "" {
		page, fromCache, err := h.service.ListPage(r.Context(), pageQueryFromRequest(r))
		if err != nil {
			http.Error(w, msgLoadFailure, http.StatusBadGateway)
			return
		}
		writeCachedJSON(w, page, fromCache)
		return
	}

	questions, fromCache, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, msgLoadFailure, http.StatusBadGateway)
		return
	}
	writeCachedJSON(w, questions, fromCache)
}

// Get handles the request to get a single question by its ID.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	question, err := h.service.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Question not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(question)
}

// Search handles the free-text question search.
func (h *QuestionHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	questions, fromCache, err := h.service.Search(r.Context(), query)
	if err != nil {
		http.Error(w, msgLoadFailure, http.StatusBadGateway)
		return
	}
	writeCachedJSON(w, questions, fromCache)
}

// ByCategory handles listing the questions filed under a category.
func (h *QuestionHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	questions, fromCache, err := h.service.ByCategory(r.Context(), categoryID)
	if err != nil {
		http.Error(w, msgLoadFailure, http.StatusBadGateway)
		return
	}
	writeCachedJSON(w, questions, fromCache)
}

// Answered handles listing all answered questions.
func (h *QuestionHandler) Answered(w http.ResponseWriter, r *http.Request) {
	questions, fromCache, err := h.service.Answered(r.Context())
	if err != nil {
		http.Error(w, msgLoadFailure, http.StatusBadGateway)
		return
	}
	writeCachedJSON(w, questions, fromCache)
}

// Unanswered handles listing all questions awaiting an answer.
func (h *QuestionHandler) Unanswered(w http.ResponseWriter, r *http.Request) {
	questions, fromCache, err := h.service.Unanswered(r.Context())
	if err != nil {
		http.Error(w, msgLoadFailure, http.StatusBadGateway)
		return
	}
	writeCachedJSON(w, questions, fromCache)
}

// Submit handles the public ask-question form. Validation failures are
// answered with the form's Bangla messages and never reach the upstream.
func (h *QuestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub models.QuestionSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sub.Title = strings.TrimSpace(sub.Title)
	sub.Description = strings.TrimSpace(sub.Description)
	sub.UserName = strings.TrimSpace(sub.UserName)
	sub.UserEmail = strings.TrimSpace(sub.UserEmail)
	sub.UserPhone = strings.TrimSpace(sub.UserPhone)

	if err := validation.Validate.Struct(sub); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": validation.QuestionMessage(err)})
		return
	}

	question, err := h.service.Submit(r.Context(), sub)
	if err != nil {
		log.Error().Err(err).Msg("Question submission failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": msgSubmitFailure})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  msgSubmitSuccess,
		"question": question,
	})
}

// AdminList handles the filtered, paginated admin question list.
func (h *QuestionHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	filter := services.QuestionFilter{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
		Page:   intParam(r, "page", 1),
		Size:   intParam(r, "size", 5),
	}

	page, fromCache, err := h.service.AdminList(r.Context(), filter)
	if err != nil {
		http.Error(w, msgLoadFailure, http.StatusBadGateway)
		return
	}
	writeCachedJSON(w, page, fromCache)
}

// Update handles an admin's edit of a question.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var question models.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	question.ID = id

	updated, err := h.service.Update(r.Context(), id, question)
	if err != nil {
		http.Error(w, "Failed to update question", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// Delete handles an admin's removal of a question.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete question", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Answer handles an admin answering a question.
func (h *QuestionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload models.AnswerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Answer) == "" {
		http.Error(w, "Answer must not be empty", http.StatusBadRequest)
		return
	}

	question, err := h.service.Answer(r.Context(), id, payload.Answer)
	if err != nil {
		http.Error(w, "Failed to answer question", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(question)
}

// pageQueryFromRequest reads the standard pagination parameters.
func pageQueryFromRequest(r *http.Request) models.PageQuery {
	return models.PageQuery{
		Page:          intParam(r, "page", 1),
		Size:          intParam(r, "size", 10),
		SortBy:        r.URL.Query().Get("sortBy"),
		SortDirection: r.URL.Query().Get("sortDirection"),
	}
}

// intParam reads an integer query parameter with a fallback.
func intParam(r *http.Request, name string, fallback int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// writeCachedJSON writes a JSON body, flagging responses served from the
// offline cache so clients can show a staleness hint.
func writeCachedJSON(w http.ResponseWriter, v interface{}, fromCache bool) {
	w.Header().Set("Content-Type", "application/json")
	if fromCache {
		w.Header().Set("X-Offline-Cache", "true")
	}
	json.NewEncoder(w).Encode(v)
}
