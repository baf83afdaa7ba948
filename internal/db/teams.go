package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// defaultTeamName keys the singleton team row.
const defaultTeamName = "default"

// GetTeamRules returns the team's rule set, creating an empty default
// row on first read.
func (db *DB) GetTeamRules(ctx context.Context) (*TeamRules, error) {
	rules, err := db.getTeamRulesByName(ctx, defaultTeamName)
	if err != nil {
		return nil, err
	}
	if rules != nil {
		return rules, nil
	}

	var created TeamRules
	err = db.pool.QueryRow(ctx,
		`INSERT INTO teams (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name, banned_words, required_phrases, created_at`,
		defaultTeamName,
	).Scan(&created.ID, &created.Name, &created.BannedWords, &created.RequiredPhrases, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create team rules: %w", err)
	}

	normalizeRules(&created)
	return &created, nil
}

// SaveTeamRules replaces both rule lists wholesale and returns the
// updated record. There are no merge semantics.
func (db *DB) SaveTeamRules(ctx context.Context, bannedWords, requiredPhrases []string) (*TeamRules, error) {
	if bannedWords == nil {
		bannedWords = []string{}
	}
	if requiredPhrases == nil {
		requiredPhrases = []string{}
	}

	var rules TeamRules
	err := db.pool.QueryRow(ctx,
		`INSERT INTO teams (name, banned_words, required_phrases)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET banned_words = $2, required_phrases = $3
		 RETURNING id, name, banned_words, required_phrases, created_at`,
		defaultTeamName, bannedWords, requiredPhrases,
	).Scan(&rules.ID, &rules.Name, &rules.BannedWords, &rules.RequiredPhrases, &rules.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save team rules: %w", err)
	}

	normalizeRules(&rules)
	return &rules, nil
}

func (db *DB) getTeamRulesByName(ctx context.Context, name string) (*TeamRules, error) {
	var rules TeamRules
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, banned_words, required_phrases, created_at
		 FROM teams WHERE name = $1`,
		name,
	).Scan(&rules.ID, &rules.Name, &rules.BannedWords, &rules.RequiredPhrases, &rules.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team rules: %w", err)
	}

	normalizeRules(&rules)
	return &rules, nil
}

// normalizeRules keeps the two lists non-nil so they serialize as JSON
// arrays rather than null.
func normalizeRules(rules *TeamRules) {
	if rules.BannedWords == nil {
		rules.BannedWords = []string{}
	}
	if rules.RequiredPhrases == nil {
		rules.RequiredPhrases = []string{}
	}
}
