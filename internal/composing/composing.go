// Package composing builds the natural-language instructions sent to the
// generation model, from user input and the team's vocabulary rules.
package composing

import (
	"fmt"
	"strings"

	"github.com/jonathan/corporate-translator/internal/prompts"
)

// Tone shapes the register of the generated rewrite.
type Tone string

// The five supported tones.
const (
	ToneHelpful  Tone = "Helpful"
	ToneNeutral  Tone = "Neutral"
	ToneFirm     Tone = "Firm"
	ToneRuthless Tone = "Ruthless"
	ToneCLevel   Tone = "C-Level"
)

// Context is the communication channel the rewrite targets.
type Context string

// The three supported contexts.
const (
	ContextEmail Context = "Email"
	ContextSlack Context = "Slack"
	ContextJira  Context = "Jira"
)

// Audience is the recipient role, passed to the model as situational framing.
type Audience string

// The three supported audiences.
const (
	AudiencePeer   Audience = "Peer"
	AudienceBoss   Audience = "Boss"
	AudienceClient Audience = "Client"
)

// toneGuidelines holds the behavioral guideline embedded for each tone.
var toneGuidelines = map[Tone]string{
	ToneHelpful:  `Use collaborative language ("we", "us"), focus on support and unblocking.`,
	ToneNeutral:  `Be objective, remove emotion, state facts clearly.`,
	ToneFirm:     `Use active voice, set clear boundaries, no hedging words (e.g., delete "maybe", "I think").`,
	ToneRuthless: `Extreme brevity. Focus purely on outcome. If communicating upwards, focus on risk/cost. If downwards, focus on speed/execution.`,
	ToneCLevel:   `Think in terms of ROI, Scalability, and OKRs. Bottom line up front (BLUF). Max 2 sentences.`,
}

// contextGuidelines holds the stylistic guideline embedded for each context.
var contextGuidelines = map[Context]string{
	ContextEmail: `Standard formal business structure.`,
	ContextSlack: `Conversational but professional. Use industry buzzwords sparingly (e.g., "sync", "bandwidth").`,
	ContextJira:  `Technical and precise. Focus on "blockers", "dependencies", and "deliverables".`,
}

var audiences = map[Audience]bool{
	AudiencePeer:   true,
	AudienceBoss:   true,
	AudienceClient: true,
}

// ParseTone maps a client-supplied string to a Tone, falling back to
// Neutral for empty or unrecognized values.
func ParseTone(s string) Tone {
	if _, ok := toneGuidelines[Tone(s)]; ok {
		return Tone(s)
	}
	return ToneNeutral
}

// ParseContext maps a client-supplied string to a Context, falling back
// to Email for empty or unrecognized values.
func ParseContext(s string) Context {
	if _, ok := contextGuidelines[Context(s)]; ok {
		return Context(s)
	}
	return ContextEmail
}

// ParseAudience maps a client-supplied string to an Audience, falling
// back to Peer for empty or unrecognized values.
func ParseAudience(s string) Audience {
	if audiences[Audience(s)] {
		return Audience(s)
	}
	return AudiencePeer
}

// Input carries everything prompt composition needs.
type Input struct {
	Text            string
	Tone            Tone
	Context         Context
	Audience        Audience
	Reverse         bool
	BannedWords     []string
	RequiredPhrases []string
}

// BuildPrompt composes the instruction text for the generation model.
// It is pure: no I/O, deterministic for a given input.
//
// In reverse mode the input is assumed to be corporate jargon and the
// instruction asks for a plain-language decoding; tone, context,
// audience, and team rules do not apply in that direction.
func BuildPrompt(input Input) string {
	if input.Reverse {
		return buildDecodePrompt(input.Text)
	}
	return buildRewritePrompt(input)
}

func buildRewritePrompt(input Input) string {
	var sb strings.Builder

	intro := prompts.MustGet("translation.json", "rewrite-intro")
	sb.WriteString(prompts.Format(intro, map[string]string{
		"Tone":     string(input.Tone),
		"Audience": string(input.Audience),
		"Context":  string(input.Context),
	}))

	sb.WriteString(fmt.Sprintf("Tone guideline: %s\n", toneGuidelines[input.Tone]))
	sb.WriteString(fmt.Sprintf("Context guideline: %s\n", contextGuidelines[input.Context]))
	sb.WriteString("\n")

	if len(input.BannedWords) > 0 {
		sb.WriteString("Never use these words or phrases: ")
		sb.WriteString(strings.Join(input.BannedWords, ", "))
		sb.WriteString(".\n")
	}
	if len(input.RequiredPhrases) > 0 {
		sb.WriteString("Work these phrases in where they fit naturally: ")
		sb.WriteString(strings.Join(input.RequiredPhrases, ", "))
		sb.WriteString(".\n")
	}
	if len(input.BannedWords) > 0 || len(input.RequiredPhrases) > 0 {
		sb.WriteString("\n")
	}

	outro := prompts.MustGet("translation.json", "rewrite-output")
	sb.WriteString(prompts.Format(outro, map[string]string{
		"Text": input.Text,
	}))

	return sb.String()
}

func buildDecodePrompt(text string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("translation.json", "decode-intro"))

	outro := prompts.MustGet("translation.json", "decode-output")
	sb.WriteString(prompts.Format(outro, map[string]string{
		"Text": text,
	}))

	return sb.String()
}
