package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"claw/internal/activitylog"
	"claw/internal/agent"
	"claw/internal/chat"
	"claw/internal/config"
	"claw/internal/session"
	"claw/internal/term"
	"claw/internal/ui"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		model      string
		agentKind  string
		theme      string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if model != "" {
				cfg.Model = model
			}
			if agentKind != "" {
				cfg.Agent = agentKind
			}
			if theme != "" {
				cfg.Theme = theme
			}
			if noColor {
				cfg.NoColor = true
			}

			ag, err := newAgent(cfg)
			if err != nil {
				return err
			}

			return runSession(cfg, ag)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.claw/config.yaml)")
	cmd.Flags().StringVar(&model, "model", "", "model identity for the agent")
	cmd.Flags().StringVar(&agentKind, "agent", "", "agent backend: echo or anthropic")
	cmd.Flags().StringVar(&theme, "theme", "", "theme: default, dark, or light")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func newAgent(cfg *config.Config) (agent.Agent, error) {
	switch cfg.Agent {
	case "anthropic":
		return agent.NewAnthropic(cfg.Model)
	default:
		return agent.NewEcho(), nil
	}
}

func runSession(cfg *config.Config, ag agent.Agent) error {
	sess := session.New(cfg, term.New(nil, nil))
	sess.Log = activitylog.New(cfg.ActivityLog.Enabled, cfg.ActivityLog.Path, sess.ID)
	defer sess.Log.Close()

	sess.Status = func() ui.Status {
		return ui.Status{Model: ag.Model(), Tokens: ag.Tokens(), Branch: "main"}
	}

	// Agent replies come back on a goroutine and re-enter the loop
	// through the notice queue.
	sess.OnSubmit = func(text string) {
		go func() {
			stream, err := ag.Submit(context.Background(), text)
			if err != nil {
				sess.Post(chat.KindSystem, fmt.Sprintf("agent error: %v", err))
				return
			}
			for chunk := range stream {
				sess.Post(chat.KindAssistant, chunk)
			}
		}()
	}

	sess.Notify(chat.KindSystem, "Welcome to claw!")
	sess.Notify(chat.KindSystem, "Type a message to start chatting. Ctrl+H shows help.")

	return sess.Run()
}
