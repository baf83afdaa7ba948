package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// defaultHistoryLimit caps history listings when the caller passes no limit.
const defaultHistoryLimit = 10

// SaveTranslation persists a new translation and returns it with its
// generated id and timestamp.
func (db *DB) SaveTranslation(ctx context.Context, input TranslationInput) (*Translation, error) {
	t := Translation{
		OriginalText:   input.OriginalText,
		TranslatedText: input.TranslatedText,
		Tone:           input.Tone,
		Context:        input.Context,
		Audience:       input.Audience,
		Feedback:       FeedbackNone,
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO translations (original_text, translated_text, tone, context, audience)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		input.OriginalText, input.TranslatedText, input.Tone, input.Context, input.Audience,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save translation: %w", err)
	}

	return &t, nil
}

// ListRecentTranslations returns the most recent translations, newest
// first. A non-positive limit uses the default of 10.
func (db *DB) ListRecentTranslations(ctx context.Context, limit int) ([]Translation, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, original_text, translated_text, tone, context, audience, feedback, created_at
		 FROM translations ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	defer rows.Close()

	var translations []Translation
	for rows.Next() {
		var t Translation
		if err := rows.Scan(&t.ID, &t.OriginalText, &t.TranslatedText, &t.Tone,
			&t.Context, &t.Audience, &t.Feedback, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		translations = append(translations, t)
	}
	return translations, nil
}

// UpdateFeedback sets the feedback rating on a translation. Succeeds
// silently when no record matches the id.
func (db *DB) UpdateFeedback(ctx context.Context, id uuid.UUID, rating int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE translations SET feedback = $1 WHERE id = $2`,
		rating, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	return nil
}
