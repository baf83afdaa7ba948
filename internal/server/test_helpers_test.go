package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/corporate-translator/internal/config"
	"github.com/jonathan/corporate-translator/internal/db"
	"github.com/jonathan/corporate-translator/internal/llm"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	mu           sync.Mutex
	translations []db.Translation
	rules        *db.TeamRules
	clock        time.Time

	saveErr     error
	listErr     error
	rulesErr    error
	feedbackErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeStore) SaveTranslation(_ context.Context, input db.TranslationInput) (*db.Translation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return nil, f.saveErr
	}

	f.clock = f.clock.Add(time.Second)
	t := db.Translation{
		ID:             uuid.New(),
		OriginalText:   input.OriginalText,
		TranslatedText: input.TranslatedText,
		Tone:           input.Tone,
		Context:        input.Context,
		Audience:       input.Audience,
		Feedback:       db.FeedbackNone,
		CreatedAt:      f.clock,
	}
	f.translations = append(f.translations, t)
	return &t, nil
}

func (f *fakeStore) ListRecentTranslations(_ context.Context, limit int) ([]db.Translation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit <= 0 {
		limit = 10
	}

	out := make([]db.Translation, len(f.translations))
	copy(out, f.translations)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) UpdateFeedback(_ context.Context, id uuid.UUID, rating int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.feedbackErr != nil {
		return f.feedbackErr
	}
	for i := range f.translations {
		if f.translations[i].ID == id {
			f.translations[i].Feedback = rating
		}
	}
	return nil
}

func (f *fakeStore) GetTeamRules(_ context.Context) (*db.TeamRules, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rulesErr != nil {
		return nil, f.rulesErr
	}
	if f.rules == nil {
		f.rules = &db.TeamRules{
			ID:              uuid.New(),
			Name:            "default",
			BannedWords:     []string{},
			RequiredPhrases: []string{},
			CreatedAt:       f.clock,
		}
	}
	return f.rules, nil
}

func (f *fakeStore) SaveTeamRules(_ context.Context, bannedWords, requiredPhrases []string) (*db.TeamRules, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rulesErr != nil {
		return nil, f.rulesErr
	}
	if bannedWords == nil {
		bannedWords = []string{}
	}
	if requiredPhrases == nil {
		requiredPhrases = []string{}
	}
	if f.rules == nil {
		f.rules = &db.TeamRules{ID: uuid.New(), Name: "default", CreatedAt: f.clock}
	}
	f.rules.BannedWords = bannedWords
	f.rules.RequiredPhrases = requiredPhrases
	return f.rules, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.translations)
}

func (f *fakeStore) last() *db.Translation {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.translations) == 0 {
		return nil
	}
	return &f.translations[len(f.translations)-1]
}

// generatorSpy records the credential and prompt each generation saw.
type generatorSpy struct {
	mu      sync.Mutex
	apiKeys []string
	prompts []string

	output     string
	generate   error
	factoryErr error
}

func (g *generatorSpy) factory(_ context.Context, apiKey string) (llm.Client, error) {
	g.mu.Lock()
	g.apiKeys = append(g.apiKeys, apiKey)
	g.mu.Unlock()

	if g.factoryErr != nil {
		return nil, g.factoryErr
	}
	return &promptRecordingClient{spy: g}, nil
}

type promptRecordingClient struct {
	spy *generatorSpy
}

func (c *promptRecordingClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	c.spy.mu.Lock()
	c.spy.prompts = append(c.spy.prompts, prompt)
	c.spy.mu.Unlock()

	if c.spy.generate != nil {
		return "", c.spy.generate
	}
	return c.spy.output, nil
}

func (c *promptRecordingClient) Close() error { return nil }

// newTestServer wires a server with fakes and no server-side API key.
func newTestServer(store Store, factory llm.Factory) *Server {
	return &Server{
		store:     store,
		generator: factory,
		cfg: &config.Config{
			Port:              5000,
			DatabaseURL:       "postgres://test",
			GenerationTimeout: 5 * time.Second,
		},
	}
}
