package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/corporate-translator/internal/composing"
	"github.com/jonathan/corporate-translator/internal/db"
	"github.com/jonathan/corporate-translator/internal/llm"
)

// translateRequest is the body of POST /api/translate. Tone, context,
// and audience are optional; unrecognized values fall back to defaults.
type translateRequest struct {
	Text        string `json:"text" validate:"required"`
	Tone        string `json:"tone"`
	Context     string `json:"context"`
	Audience    string `json:"audience"`
	ReverseMode bool   `json:"reverseMode"`
}

// Validate validates the translateRequest using the validator.
// Whitespace-only text fails alongside missing text.
func (r *translateRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil || strings.TrimSpace(r.Text) == "" {
		return &ErrValidation{Field: "text", Message: "Text is required"}
	}
	return nil
}

// feedbackRequest is the body of POST /api/feedback.
type feedbackRequest struct {
	TranslationID string `json:"translationId" validate:"required"`
	Rating        *int   `json:"rating" validate:"required"`
}

// Validate validates the feedbackRequest using the validator.
func (r *feedbackRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Field: "translationId", Message: "translationId and rating are required"}
	}
	if rating := *r.Rating; rating != db.FeedbackLike && rating != db.FeedbackDislike {
		return &ErrValidation{Field: "rating", Message: "rating must be 1 or -1"}
	}
	return nil
}

// handleHistory returns the 10 most recent translations, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	translations, err := s.store.ListRecentTranslations(r.Context(), 0)
	if err != nil {
		log.Printf("Error fetching history: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	if translations == nil {
		translations = []db.Translation{}
	}
	s.jsonResponse(w, http.StatusOK, translations)
}

// handleTranslate rewrites (or decodes) the submitted text via the
// generation service and persists the result.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, err)
		return
	}

	tone := composing.ParseTone(req.Tone)
	channel := composing.ParseContext(req.Context)
	audience := composing.ParseAudience(req.Audience)

	rules, err := s.store.GetTeamRules(r.Context())
	if err != nil {
		log.Printf("Error loading team rules: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load team rules")
		return
	}

	prompt := composing.BuildPrompt(composing.Input{
		Text:            req.Text,
		Tone:            tone,
		Context:         channel,
		Audience:        audience,
		Reverse:         req.ReverseMode,
		BannedWords:     rules.BannedWords,
		RequiredPhrases: rules.RequiredPhrases,
	})

	apiKey := r.Header.Get(apiKeyHeader)
	if apiKey == "" {
		apiKey = s.cfg.APIKey
	}

	var translated string
	if apiKey == "" {
		log.Println("No generation API key configured, using mock output")
		translated = llm.MockTranslation(string(tone), req.Text)
	} else {
		translated, err = s.generate(r.Context(), apiKey, prompt)
		if err != nil {
			log.Printf("Generation error: %v", err)
			s.jsonResponse(w, HTTPStatus(err), map[string]string{
				"error":   "AI service unavailable. Please check your API key or try again later.",
				"details": err.Error(),
			})
			return
		}
	}

	saved, err := s.store.SaveTranslation(r.Context(), db.TranslationInput{
		OriginalText:   req.Text,
		TranslatedText: translated,
		Tone:           string(tone),
		Context:        string(channel),
		Audience:       string(audience),
	})
	if err != nil {
		log.Printf("Error saving translation: %v", err)
		// The generated text is still returned so the caller's work is
		// not lost to a storage failure.
		s.jsonResponse(w, HTTPStatus(err), map[string]string{
			"error":       "Failed to save translation",
			"translation": translated,
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"translation": translated,
		"id":          saved.ID,
	})
}

// generate runs a single bounded call against the generation service.
// One attempt, no retries; failures surface to the caller immediately.
func (s *Server) generate(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := s.generator(ctx, apiKey)
	if err != nil {
		return "", err
	}
	defer func() { _ = client.Close() }()

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()

	return client.GenerateContent(genCtx, prompt)
}

// handleFeedback records a like/dislike rating on a past translation.
// Voting is best-effort: the server tracks no voter identity, so
// repeated calls overwrite the rating.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, err)
		return
	}

	id, err := uuid.Parse(req.TranslationID)
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "translationId", Message: "Invalid translation id"})
		return
	}

	if err := s.store.UpdateFeedback(r.Context(), id, *req.Rating); err != nil {
		log.Printf("Error updating feedback: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
