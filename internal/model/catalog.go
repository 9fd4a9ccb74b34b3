package model

import "sort"

// Recommended defaults by use case.
const (
	ModelFastAndCheap = "claude-3-5-haiku-20241022"
	ModelBalanced     = "claude-3-5-sonnet-20241022"
	ModelBestQuality  = "claude-3-opus-20240229"
	ModelLongContext  = "gemini-1.5-pro"
)

// ModelInfo describes a language model and its pricing.
type ModelInfo struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Provider           string  `json:"provider"`
	CostPer1kTokensIn  float64 `json:"costPer1kTokensInput"`
	CostPer1kTokensOut float64 `json:"costPer1kTokensOutput"`
	MaxTokens          int     `json:"maxTokens"`
	ContextWindow      int     `json:"contextWindow"`
}

// Catalog maps model ids to pricing info. Prices are point-in-time and
// only feed cost estimates, never billing.
var Catalog = map[string]ModelInfo{
	"claude-3-5-sonnet-20241022": {
		ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet", Provider: "Anthropic",
		CostPer1kTokensIn: 0.003, CostPer1kTokensOut: 0.015, MaxTokens: 8192, ContextWindow: 200000,
	},
	"claude-3-5-haiku-20241022": {
		ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku", Provider: "Anthropic",
		CostPer1kTokensIn: 0.001, CostPer1kTokensOut: 0.005, MaxTokens: 8192, ContextWindow: 200000,
	},
	"claude-3-opus-20240229": {
		ID: "claude-3-opus-20240229", Name: "Claude 3 Opus", Provider: "Anthropic",
		CostPer1kTokensIn: 0.015, CostPer1kTokensOut: 0.075, MaxTokens: 4096, ContextWindow: 200000,
	},
	"gpt-4-turbo": {
		ID: "gpt-4-turbo", Name: "GPT-4 Turbo", Provider: "OpenAI",
		CostPer1kTokensIn: 0.01, CostPer1kTokensOut: 0.03, MaxTokens: 4096, ContextWindow: 128000,
	},
	"gpt-3.5-turbo": {
		ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Provider: "OpenAI",
		CostPer1kTokensIn: 0.0005, CostPer1kTokensOut: 0.0015, MaxTokens: 4096, ContextWindow: 16385,
	},
	"gemini-1.5-pro": {
		ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", Provider: "Google",
		CostPer1kTokensIn: 0.00125, CostPer1kTokensOut: 0.005, MaxTokens: 8192, ContextWindow: 2000000,
	},
	"gemini-1.5-flash": {
		ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash", Provider: "Google",
		CostPer1kTokensIn: 0.000075, CostPer1kTokensOut: 0.0003, MaxTokens: 8192, ContextWindow: 1000000,
	},
	"mistral-large": {
		ID: "mistral-large", Name: "Mistral Large", Provider: "Mistral AI",
		CostPer1kTokensIn: 0.004, CostPer1kTokensOut: 0.012, MaxTokens: 8192, ContextWindow: 128000,
	},
}

// CalculateCost estimates the dollar cost of a call against a catalog
// model. Unknown model ids cost 0.
func CalculateCost(modelID string, inputTokens, outputTokens int) float64 {
	info, ok := Catalog[modelID]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1000*info.CostPer1kTokensIn +
		float64(outputTokens)/1000*info.CostPer1kTokensOut
}

// ModelsByProvider returns catalog entries for one provider, sorted by
// input cost ascending.
func ModelsByProvider(provider string) []ModelInfo {
	var out []ModelInfo
	for _, info := range Catalog {
		if info.Provider == provider {
			out = append(out, info)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CostPer1kTokensIn < out[j].CostPer1kTokensIn
	})
	return out
}

// Providers returns the distinct provider names in the catalog, sorted.
func Providers() []string {
	seen := make(map[string]bool)
	var out []string
	for _, info := range Catalog {
		if !seen[info.Provider] {
			seen[info.Provider] = true
			out = append(out, info.Provider)
		}
	}
	sort.Strings(out)
	return out
}

// CompareCosts estimates the same call against several models.
func CompareCosts(modelIDs []string, inputTokens, outputTokens int) map[string]float64 {
	costs := make(map[string]float64, len(modelIDs))
	for _, id := range modelIDs {
		costs[id] = CalculateCost(id, inputTokens, outputTokens)
	}
	return costs
}
