package db

import (
	"time"

	"github.com/google/uuid"
)

// Feedback ratings. Records start at FeedbackNone; the feedback endpoint
// moves them to Like or Dislike.
const (
	FeedbackDislike = -1
	FeedbackNone    = 0
	FeedbackLike    = 1
)

// Translation is one persisted translation. Immutable after creation
// except for Feedback.
type Translation struct {
	ID             uuid.UUID `json:"id"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	Tone           string    `json:"tone"`
	Context        string    `json:"context"`
	Audience       string    `json:"audience"`
	Feedback       int       `json:"feedback"`
	CreatedAt      time.Time `json:"timestamp"`
}

// TranslationInput holds the fields the translate endpoint persists.
// ID, feedback, and timestamp are server-assigned.
type TranslationInput struct {
	OriginalText   string
	TranslatedText string
	Tone           string
	Context        string
	Audience       string
}

// TeamRules is the single team-wide vocabulary rule set. The system is
// single-tenant: at most one row exists, keyed by name.
type TeamRules struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	BannedWords     []string  `json:"bannedWords"`
	RequiredPhrases []string  `json:"requiredPhrases"`
	CreatedAt       time.Time `json:"createdAt"`
}
