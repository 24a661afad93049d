package agent

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic is an Agent backed by the Anthropic Messages API. The
// conversation so far is replayed on every Submit so replies stay in
// context.
type Anthropic struct {
	client   anthropic.Client
	model    string
	messages []anthropic.MessageParam
	tokens   atomic.Int64
}

// NewAnthropic creates an Anthropic agent for the given model. The
// ANTHROPIC_API_KEY environment variable must be set.
func NewAnthropic(model string) (*Anthropic, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}
	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

func (a *Anthropic) Model() string { return a.model }

func (a *Anthropic) Tokens() int64 { return a.tokens.Load() }

func (a *Anthropic) Submit(ctx context.Context, text string) (<-chan string, error) {
	a.messages = append(a.messages, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 4096,
		Messages:  a.messages,
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic message: %w", err)
	}

	a.messages = append(a.messages, resp.ToParam())
	a.tokens.Add(resp.Usage.InputTokens + resp.Usage.OutputTokens)

	out := make(chan string, len(resp.Content))
	for _, block := range resp.Content {
		if t, ok := block.AsAny().(anthropic.TextBlock); ok {
			out <- t.Text
		}
	}
	close(out)
	return out, nil
}
