package services

import (
	"testing"
	"time"

	"haven/internal/config"
)

func testBypassConfig() config.BypassConfig {
	return config.BypassConfig{
		Secret:              "open sesame",
		RequiredActivations: 3,
		IdleWindow:          config.Duration(700 * time.Millisecond),
	}
}

func TestBypassGate_GestureRevealsPrompt(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	g := NewBypassGate(testBypassConfig(), clock.Now)

	if g.Activate() {
		t.Error("prompt revealed after one gesture")
	}
	clock.Advance(200 * time.Millisecond)
	if g.Activate() {
		t.Error("prompt revealed after two gestures")
	}
	clock.Advance(200 * time.Millisecond)
	if !g.Activate() {
		t.Error("prompt not revealed after three gestures")
	}
	if !g.InputVisible() {
		t.Error("InputVisible() = false after the reveal gesture")
	}
}

func TestBypassGate_IdleResetsStreak(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	g := NewBypassGate(testBypassConfig(), clock.Now)

	g.Activate()
	g.Activate()

	g.Tick(clock.Advance(time.Second))

	// The streak restarted, so two more gestures are not enough.
	if g.Activate() {
		t.Error("prompt revealed after an idle reset")
	}
	if g.Activate() {
		t.Error("prompt revealed on the second gesture of a fresh streak")
	}
	if !g.Activate() {
		t.Error("prompt not revealed after a full fresh streak")
	}
}

func TestBypassGate_Submit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact match", input: "open sesame", want: true},
		{name: "surrounding whitespace trimmed", input: "  open sesame \n", want: true},
		{name: "case matters", input: "Open Sesame", want: false},
		{name: "wrong secret", input: "hello", want: false},
		{name: "empty input", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
			g := NewBypassGate(testBypassConfig(), clock.Now)
			g.Activate()
			g.Activate()
			g.Activate()

			if got := g.Submit(tt.input); got != tt.want {
				t.Errorf("Submit(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if g.InputVisible() {
				t.Error("prompt still visible after submit")
			}
		})
	}
}

func TestBypassGate_DisabledWithoutSecret(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	cfg := testBypassConfig()
	cfg.Secret = ""
	g := NewBypassGate(cfg, clock.Now)

	for i := 0; i < 10; i++ {
		if g.Activate() {
			t.Fatal("disabled gate revealed the prompt")
		}
	}
	if g.Submit("") {
		t.Error("disabled gate accepted an empty secret")
	}
}
