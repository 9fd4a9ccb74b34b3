// Package optimize rewrites prompt text through the Anthropic API. It
// is a pure collaborator: it returns the optimized text and never
// touches the stores. Callers decide whether to accept the result.
package optimize

import (
	"context"
	stderrors "errors"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/log"

	"github.com/jmallek/promptstash/internal/config"
	"github.com/jmallek/promptstash/internal/errors"
)

// systemPrompt instructs the model to act as a prompt engineer and
// return only the rewritten prompt.
const systemPrompt = `You are an expert prompt engineer specialized in optimizing AI prompts. Your task is to improve the given prompt to be more effective and produce better results.

When optimizing, focus on:
1. **Clarity & Specificity**: Make instructions crystal clear and unambiguous
2. **Context**: Add relevant background information and constraints
3. **Structure**: Organize the prompt logically with clear sections
4. **Output Format**: Specify exactly what format the response should take
5. **Examples**: Include relevant examples when helpful
6. **Edge Cases**: Address potential ambiguities or special cases
7. **Role Definition**: Clearly define the AI's role and expertise
8. **Success Criteria**: Define what makes a good response

Return ONLY the optimized prompt without any explanations, commentary, or meta-discussion about the optimization.`

const (
	defaultMaxTokens   = 2000
	defaultTemperature = 0.7
)

// Optimizer calls the Anthropic Messages API to rewrite prompt text.
type Optimizer struct {
	client anthropic.Client
	model  string
}

// New builds an Optimizer from the configuration. Fails fast when no
// API key is configured so callers can surface the problem before
// making a network call.
func New(cfg *config.Config) (*Optimizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewNoAPIKey()
	}
	return &Optimizer{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.DefaultModel,
	}, nil
}

// ValidateKeyFormat reports whether a key looks like an Anthropic API
// key. It is a shape check only; the API is the authority.
func ValidateKeyFormat(apiKey string) bool {
	return strings.HasPrefix(apiKey, "sk-ant-api") && len(apiKey) > 20
}

// Optimize sends the prompt text to the API and returns the rewritten
// text. The store is never touched here; the caller applies the result
// only after the user accepts it.
func (o *Optimizer) Optimize(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.NewInvalidRequest("prompt text is required")
	}

	msg, err := o.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(o.model),
		MaxTokens:   defaultMaxTokens,
		Temperature: anthropic.Float(defaultTemperature),
		System: []anthropic.TextBlockParam{{
			Text: systemPrompt,
		}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(
				"Optimize this prompt to make it more effective:\n\n" + prompt,
			)),
		},
	})
	if err != nil {
		return "", classifyAPIError(err)
	}

	var text string
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += tb.Text
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.NewMalformedResponse("API response contained no text content")
	}

	log.Debug("prompt optimized", "model", o.model, "chars", len(text))
	return text, nil
}

// classifyAPIError maps SDK errors onto the error taxonomy: 401 means
// the key was rejected, anything else from the API is an upstream
// failure.
func classifyAPIError(err error) error {
	var apiErr *anthropic.Error
	if stderrors.As(err, &apiErr) {
		if apiErr.StatusCode == 401 {
			return errors.NewInvalidAPIKey()
		}
		return errors.NewUpstream(apiErr.StatusCode, apiErr.Error())
	}
	return errors.NewUpstream(0, err.Error())
}
