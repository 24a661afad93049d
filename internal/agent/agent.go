// Package agent is the boundary to the conversational collaborator
// that consumes submitted text and produces assistant replies.
package agent

import "context"

// Agent accepts submitted input and streams back reply chunks. The
// returned channel is closed when the reply is complete.
type Agent interface {
	// Model returns the model identity shown in the status bar.
	Model() string
	// Tokens returns the cumulative token count for the session.
	Tokens() int64
	// Submit sends user text and returns the reply stream.
	Submit(ctx context.Context, text string) (<-chan string, error)
}

// Echo is the offline default: it parrots the submitted text back as a
// single chunk.
type Echo struct {
	count int64
}

// NewEcho creates an Echo agent.
func NewEcho() *Echo { return &Echo{} }

func (e *Echo) Model() string { return "echo" }

func (e *Echo) Tokens() int64 { return e.count }

func (e *Echo) Submit(ctx context.Context, text string) (<-chan string, error) {
	e.count += int64(len(text) / 4)
	out := make(chan string, 1)
	out <- "you said: " + text
	close(out)
	return out, nil
}
