package model

import (
	"math"
	"testing"
)

func TestCalculateCost(t *testing.T) {
	// 1000 in + 1000 out on 3.5 Sonnet: 0.003 + 0.015.
	got := CalculateCost("claude-3-5-sonnet-20241022", 1000, 1000)
	if math.Abs(got-0.018) > 1e-9 {
		t.Errorf("CalculateCost() = %v, want 0.018", got)
	}

	if got := CalculateCost("unknown-model", 1000, 1000); got != 0 {
		t.Errorf("unknown model cost = %v, want 0", got)
	}

	if got := CalculateCost("claude-3-5-haiku-20241022", 0, 0); got != 0 {
		t.Errorf("zero tokens cost = %v, want 0", got)
	}
}

func TestModelsByProvider(t *testing.T) {
	models := ModelsByProvider("Anthropic")
	if len(models) != 3 {
		t.Fatalf("expected 3 Anthropic models, got %d", len(models))
	}
	// Sorted by input cost ascending: haiku, sonnet, opus.
	if models[0].ID != "claude-3-5-haiku-20241022" {
		t.Errorf("cheapest = %s, want claude-3-5-haiku-20241022", models[0].ID)
	}
	if models[2].ID != "claude-3-opus-20240229" {
		t.Errorf("priciest = %s, want claude-3-opus-20240229", models[2].ID)
	}

	if got := ModelsByProvider("Nobody"); len(got) != 0 {
		t.Errorf("unknown provider returned %d models", len(got))
	}
}

func TestProviders(t *testing.T) {
	providers := Providers()
	want := []string{"Anthropic", "Google", "Mistral AI", "OpenAI"}
	if len(providers) != len(want) {
		t.Fatalf("providers = %v, want %v", providers, want)
	}
	for i, p := range want {
		if providers[i] != p {
			t.Errorf("providers[%d] = %s, want %s", i, providers[i], p)
		}
	}
}

func TestCompareCosts(t *testing.T) {
	costs := CompareCosts([]string{"claude-3-5-haiku-20241022", "gpt-4-turbo"}, 2000, 0)
	if len(costs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(costs))
	}
	if math.Abs(costs["claude-3-5-haiku-20241022"]-0.002) > 1e-9 {
		t.Errorf("haiku cost = %v, want 0.002", costs["claude-3-5-haiku-20241022"])
	}
	if math.Abs(costs["gpt-4-turbo"]-0.02) > 1e-9 {
		t.Errorf("gpt-4-turbo cost = %v, want 0.02", costs["gpt-4-turbo"])
	}
}
