package composing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Tone
	}{
		{"helpful", "Helpful", ToneHelpful},
		{"neutral", "Neutral", ToneNeutral},
		{"firm", "Firm", ToneFirm},
		{"ruthless", "Ruthless", ToneRuthless},
		{"c-level", "C-Level", ToneCLevel},
		{"empty falls back", "", ToneNeutral},
		{"unknown falls back", "Sassy", ToneNeutral},
		{"wrong case falls back", "helpful", ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTone(tt.input))
		})
	}
}

func TestParseContext(t *testing.T) {
	assert.Equal(t, ContextSlack, ParseContext("Slack"))
	assert.Equal(t, ContextJira, ParseContext("Jira"))
	assert.Equal(t, ContextEmail, ParseContext(""))
	assert.Equal(t, ContextEmail, ParseContext("Carrier Pigeon"))
}

func TestParseAudience(t *testing.T) {
	assert.Equal(t, AudienceBoss, ParseAudience("Boss"))
	assert.Equal(t, AudienceClient, ParseAudience("Client"))
	assert.Equal(t, AudiencePeer, ParseAudience(""))
	assert.Equal(t, AudiencePeer, ParseAudience("Everyone"))
}

func TestBuildPrompt_EmbedsInputVerbatim(t *testing.T) {
	for _, tone := range []Tone{ToneHelpful, ToneNeutral, ToneFirm, ToneRuthless, ToneCLevel} {
		for _, ctx := range []Context{ContextEmail, ContextSlack, ContextJira} {
			for _, aud := range []Audience{AudiencePeer, AudienceBoss, AudienceClient} {
				prompt := BuildPrompt(Input{
					Text:     "that idea is stupid",
					Tone:     tone,
					Context:  ctx,
					Audience: aud,
				})

				assert.Contains(t, prompt, "that idea is stupid")
				assert.Contains(t, prompt, toneGuidelines[tone])
				assert.Contains(t, prompt, contextGuidelines[ctx])
				assert.Contains(t, prompt, "Target Audience: "+string(aud))
			}
		}
	}
}

func TestBuildPrompt_SelectedGuidelinesOnly(t *testing.T) {
	prompt := BuildPrompt(Input{
		Text:     "ship it",
		Tone:     ToneFirm,
		Context:  ContextJira,
		Audience: AudiencePeer,
	})

	assert.Contains(t, prompt, toneGuidelines[ToneFirm])
	assert.NotContains(t, prompt, toneGuidelines[ToneRuthless])
	assert.Contains(t, prompt, contextGuidelines[ContextJira])
	assert.NotContains(t, prompt, contextGuidelines[ContextSlack])
}

func TestBuildPrompt_TeamRules(t *testing.T) {
	prompt := BuildPrompt(Input{
		Text:            "we need to talk",
		Tone:            ToneNeutral,
		Context:         ContextEmail,
		Audience:        AudiencePeer,
		BannedWords:     []string{"synergy", "circle back"},
		RequiredPhrases: []string{"customer-obsessed"},
	})

	assert.Contains(t, prompt, "Never use these words or phrases: synergy, circle back.")
	assert.Contains(t, prompt, "customer-obsessed")
}

func TestBuildPrompt_NoTeamRules(t *testing.T) {
	prompt := BuildPrompt(Input{
		Text:     "we need to talk",
		Tone:     ToneNeutral,
		Context:  ContextEmail,
		Audience: AudiencePeer,
	})

	assert.NotContains(t, prompt, "Never use these words")
	assert.NotContains(t, prompt, "Work these phrases in")
}

func TestBuildPrompt_ReverseMode(t *testing.T) {
	prompt := BuildPrompt(Input{
		Text:    "let's circle back offline",
		Tone:    ToneRuthless,
		Context: ContextSlack,
		Reverse: true,
	})

	assert.Contains(t, prompt, "let's circle back offline")
	assert.Contains(t, prompt, "plain, direct language")
	assert.Contains(t, prompt, "TL;DR:")

	// Tone and context guidance never leaks into decoding prompts.
	for _, guideline := range toneGuidelines {
		assert.NotContains(t, prompt, guideline)
	}
	for _, guideline := range contextGuidelines {
		assert.NotContains(t, prompt, guideline)
	}
	assert.NotContains(t, prompt, "Target Tone")
}

func TestBuildPrompt_ReverseModeIgnoresTeamRules(t *testing.T) {
	prompt := BuildPrompt(Input{
		Text:        "leveraging synergies going forward",
		Reverse:     true,
		BannedWords: []string{"synergy"},
	})

	assert.NotContains(t, prompt, "Never use these words")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	input := Input{
		Text:        "status update please",
		Tone:        ToneCLevel,
		Context:     ContextJira,
		Audience:    AudienceBoss,
		BannedWords: []string{"asap"},
	}

	assert.Equal(t, BuildPrompt(input), BuildPrompt(input))
}
