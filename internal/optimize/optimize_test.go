package optimize

import (
	"context"
	"testing"

	"github.com/jmallek/promptstash/internal/config"
	"github.com/jmallek/promptstash/internal/errors"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := New(cfg)
	if !errors.Is(err, errors.ErrNoAPIKey) {
		t.Errorf("New() without key error = %v, want NO_API_KEY", err)
	}

	cfg.APIKey = "sk-ant-REDACTED"
	o, err := New(cfg)
	if err != nil {
		t.Fatalf("New() with key error = %v", err)
	}
	if o.model != cfg.DefaultModel {
		t.Errorf("model = %q, want %q", o.model, cfg.DefaultModel)
	}
}

func TestOptimize_RejectsEmptyPrompt(t *testing.T) {
	o, err := New(&config.Config{APIKey: "sk-ant-REDACTED", DefaultModel: "claude-3-5-sonnet-20241022"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = o.Optimize(context.Background(), "   ")
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("Optimize(empty) error = %v, want INVALID_REQUEST", err)
	}
}

func TestValidateKeyFormat(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"sk-ant-REDACTED", true},
		{"sk-ant-api", false},
		{"sk-other-key-0000000000000000", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateKeyFormat(tc.key); got != tc.want {
			t.Errorf("ValidateKeyFormat(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
