package agent

import (
	"context"
	"testing"
)

func TestEcho_Submit(t *testing.T) {
	e := NewEcho()
	ch, err := e.Submit(context.Background(), "hello")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	var got []string
	for chunk := range ch {
		got = append(got, chunk)
	}
	if len(got) != 1 || got[0] != "you said: hello" {
		t.Fatalf("unexpected reply: %v", got)
	}
}

func TestEcho_TokensAccumulate(t *testing.T) {
	e := NewEcho()
	if e.Tokens() != 0 {
		t.Fatalf("fresh agent should have zero tokens, got %d", e.Tokens())
	}
	e.Submit(context.Background(), "abcdefgh")
	first := e.Tokens()
	if first <= 0 {
		t.Fatalf("expected tokens to grow, got %d", first)
	}
	e.Submit(context.Background(), "abcdefgh")
	if e.Tokens() <= first {
		t.Fatalf("expected tokens to keep growing, got %d", e.Tokens())
	}
}

func TestEcho_Model(t *testing.T) {
	if got := NewEcho().Model(); got != "echo" {
		t.Fatalf("model = %q", got)
	}
}
