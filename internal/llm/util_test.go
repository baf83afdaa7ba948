package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Per our discussion, the timeline slipped.", "Per our discussion, the timeline slipped."},
		{"surrounding whitespace", "  trimmed  \n", "trimmed"},
		{"code fences", "```\nfenced output\n```", "fenced output"},
		{"fence with language tag", "```text\nfenced output\n```", "fenced output"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanResponse(tt.input))
		})
	}
}

func TestMockTranslation(t *testing.T) {
	got := MockTranslation("Firm", "that idea is stupid")
	assert.Equal(t, "[Mock - Firm] that idea is stupid", got)
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &GenerationError{Message: "generation request failed", Cause: cause}

	assert.Contains(t, err.Error(), "generation request failed")
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.ErrorIs(t, err, cause)
}

func TestGenerationError_NoCause(t *testing.T) {
	err := &GenerationError{Message: "API key is required"}
	assert.Equal(t, "API key is required", err.Error())
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "")

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
}
