package normalize

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// extractPreamble constrains the model to canonical US locations. The
// EMPTY sentinel keeps "no location" distinguishable from a bad answer.
const extractPreamble = "You are a US location extractor. The text can be in Uzbek, Russian or English. " +
	"Extract the US city name or state name. " +
	"IMPORTANT: It can be ANY US city, not just famous ones (New York, LA). " +
	"Small cities like 'Columbia Missouri', 'El Paso', 'Knoxville', 'Ann Arbor' etc. are also valid. " +
	"Examples:\n" +
	"- 'menga kansas city dan ovqat kerak' -> Kansas City, Missouri, USA\n" +
	"- 'man columbia modaman' -> Columbia, Missouri, USA\n" +
	"- 'ovqat yetkazib berish austin tx' -> Austin, Texas, USA\n" +
	"- 'send las vegas food' -> Las Vegas, Nevada, USA\n" +
	"Format: 'City, State, USA' or 'City, USA'. " +
	"If no US location: reply EMPTY"

const normalizePreamble = "If the input contains a street address, " +
	"extract only the city and state and reply in format 'City, State, USA'. " +
	"If no street address, reply with the biggest US city that matches. " +
	"Never explain."

// Completer is the single-turn, deterministic completion surface the
// extractor needs. Satisfied by the Anthropic SDK wrapper below and by
// test fakes.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// sdkCompleter backs Completer with the official anthropic-sdk-go.
type sdkCompleter struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

// NewCompleter creates a Completer calling the Anthropic API with
// temperature 0.
func NewCompleter(apiKey, model string, maxTokens int64) Completer {
	if maxTokens <= 0 {
		maxTokens = 64
	}
	return &sdkCompleter{
		client:    sdk.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *sdkCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: sdk.Float(0),
		System: []sdk.TextBlockParam{
			{Text: system},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "normalize: create message")
	}

	var out strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// Extractor is the language-model-assisted location extraction path.
type Extractor struct {
	completer Completer
}

// NewExtractor wraps a Completer.
func NewExtractor(c Completer) *Extractor {
	return &Extractor{completer: c}
}

// Extract pulls a canonical US location out of free text. Greetings are
// stripped first. Any API error, the EMPTY sentinel, or a near-empty
// response yields ok=false; a successful answer always carries the country
// suffix.
func (e *Extractor) Extract(ctx context.Context, text string) (string, bool) {
	t := StripGreeting(text)
	if len(t) < 2 {
		return "", false
	}

	result, err := e.completer.Complete(ctx, extractPreamble, t)
	if err != nil {
		zap.L().Warn("normalize: assisted extraction failed", zap.Error(err))
		return "", false
	}

	switch strings.ToUpper(result) {
	case "", "EMPTY", "NONE", "NULL":
		return "", false
	}
	if len(result) < 2 {
		return "", false
	}

	return EnsureCountry(result), true
}

// NormalizeAssisted converts text to a "City, State, USA" query via the
// model, falling back to a title-cased guess when the API is unavailable.
func (e *Extractor) NormalizeAssisted(ctx context.Context, text string) string {
	t := strings.ToLower(StripGreeting(text))

	result, err := e.completer.Complete(ctx, normalizePreamble, t)
	if err != nil || result == "" {
		if err != nil {
			zap.L().Warn("normalize: assisted normalize failed", zap.Error(err))
		}
		return titleCaser.String(t) + ", " + countrySuffix
	}
	return result
}
