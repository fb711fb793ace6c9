package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the question, category and quiz endpoints.
type HTTPHandlers struct {
	engine     *Engine
	selector   *Selector
	questions  QuestionStore
	categories CategoryStore
	publisher  EventPublisher
	metrics    Metrics
	logger     zerolog.Logger
}

// HandlerOptions carries the optional collaborators of HTTPHandlers.
type HandlerOptions struct {
	Publisher EventPublisher
	Metrics   Metrics
}

// NewHTTPHandlers wires handlers over the given stores.
func NewHTTPHandlers(questions QuestionStore, categories CategoryStore, selector *Selector, opts HandlerOptions, logger zerolog.Logger) *HTTPHandlers {
	h := &HTTPHandlers{
		engine:     NewEngine(questions),
		selector:   selector,
		questions:  questions,
		categories: categories,
		publisher:  opts.Publisher,
		metrics:    opts.Metrics,
		logger:     logger.With().Str("component", "question_http").Logger(),
	}
	if h.selector == nil {
		h.selector = NewSelector(questions, nil)
	}
	if h.publisher == nil {
		h.publisher = nopPublisher{}
	}
	if h.metrics == nil {
		h.metrics = nopMetrics{}
	}
	return h
}

// Register mounts every route on mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", h.Index)
	mux.HandleFunc("/categories", h.ListCategories)
	mux.HandleFunc("/categories/{id}/questions", h.QuestionsByCategory)
	mux.HandleFunc("/questions", h.Questions)
	mux.HandleFunc("/questions/search", h.SearchQuestions)
	mux.HandleFunc("/questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("/quizzes", h.PlayQuiz)
}

// Index handles GET /
func (h *HTTPHandlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"isAlive": true})
}

// ListCategories handles GET /categories
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	cats, err := h.categories.ListCategories(r.Context())
	if err != nil {
		h.log(r).Error().Err(err).Msg("list categories failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categoryLabels(cats),
	})
}

// Questions dispatches /questions by method.
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListQuestions(w, r)
	case http.MethodPost:
		h.CreateQuestion(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := ParsePage(r.URL.Query().Get("page"))

	res, err := h.engine.ListAll(ctx)
	if err != nil {
		h.log(r).Error().Err(err).Msg("list questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	current := Paginate(res.Questions, page, PageSize)
	if len(current) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	cats, err := h.categories.ListCategories(ctx)
	if err != nil {
		h.log(r).Error().Err(err).Msg("list categories failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions":        current,
		"success":          true,
		"total_questions":  res.Total,
		"categories":       categoryLabels(cats),
		"current_category": nil,
	})
}

// CreateQuestion handles POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log(r).Debug().Err(err).Msg("invalid create payload")
		httperrors.RespondUnprocessable(w)
		return
	}
	if err := Validate(req); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httperrors.RespondValidationError(w, verr.Field, verr.Message)
			return
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	created, err := h.questions.CreateQuestion(r.Context(), req.ToNewQuestion())
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httperrors.RespondValidationError(w, verr.Field, verr.Message)
			return
		}
		h.log(r).Error().Err(err).Msg("create question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.metrics.QuestionMutation("create")
	h.publish(r, Event{
		Type:       EventQuestionCreated,
		QuestionID: created.ID,
		CategoryID: created.CategoryID,
	})
	h.log(r).Info().Int64("question_id", created.ID).Int64("category", created.CategoryID).Msg("question created")

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"created": created.ID,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	if err := h.questions.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.log(r).Error().Err(err).Int64("question_id", id).Msg("delete question failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	h.metrics.QuestionMutation("delete")
	h.publish(r, Event{Type: EventQuestionDeleted, QuestionID: id})
	h.log(r).Info().Int64("question_id", id).Msg("question deleted")

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// SearchQuestions handles POST /questions/search?page=N
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if err := Validate(req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	res, err := h.engine.Search(r.Context(), *req.SearchTerm)
	if err != nil {
		h.log(r).Error().Err(err).Str("term", *req.SearchTerm).Msg("search questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	page := ParsePage(r.URL.Query().Get("page"))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions":       Paginate(res.Questions, page, PageSize),
		"totalQuestions":  res.Total,
		"currentCategory": "none",
		"success":         true,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions?page=N
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categoryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	ctx := r.Context()
	res, err := h.engine.ByCategory(ctx, categoryID)
	if err != nil {
		h.log(r).Error().Err(err).Int64("category", categoryID).Msg("category questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	// A missing category has no label to report, so the request cannot be served.
	category, err := h.categories.GetCategory(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, ErrCategoryNotFound) {
			h.log(r).Error().Err(err).Int64("category", categoryID).Msg("category lookup failed")
		}
		httperrors.RespondUnprocessable(w)
		return
	}

	page := ParsePage(r.URL.Query().Get("page"))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions":       Paginate(res.Questions, page, PageSize),
		"success":         true,
		"totalQuestions":  res.Total,
		"currentCategory": category.Type,
	})
}

// PlayQuiz handles POST /quizzes
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req PlayQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	q, ok, err := h.selector.Next(r.Context(), req.CategoryFilter(), req.PreviousQuestions)
	if err != nil {
		h.log(r).Error().Err(err).Msg("quiz draw failed")
		httperrors.RespondUnprocessable(w)
		return
	}

	var next interface{}
	if ok {
		next = q
		h.metrics.QuizDraw(DrawOutcomeQuestion)
	} else {
		h.metrics.QuizDraw(DrawOutcomeExhausted)
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": next,
	})
}

func (h *HTTPHandlers) publish(r *http.Request, evt Event) {
	evt.At = time.Now().UTC()
	if err := h.publisher.Publish(r.Context(), evt); err != nil {
		h.log(r).Warn().Err(err).Str("event", evt.Type).Int64("question_id", evt.QuestionID).Msg("publish question event failed")
	}
}

// log prefers the request-scoped logger installed by the server middleware.
func (h *HTTPHandlers) log(r *http.Request) *zerolog.Logger {
	if l := logging.FromContext(r.Context()); l.GetLevel() != zerolog.Disabled {
		return &l
	}
	return &h.logger
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn().Err(err).Msg("encode response failed")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func categoryLabels(cats []Category) map[string]string {
	out := make(map[string]string, len(cats))
	for _, c := range cats {
		out[strconv.FormatInt(c.ID, 10)] = c.Type
	}
	return out
}
