package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"forgeyourday/internal/engine"
)

// RunFeed opens the interactive feed browser for the given user.
func RunFeed(ctx context.Context, svc *engine.Service, username string, out io.Writer) error {
	m := newFeedModel(ctx, svc, username, time.Now)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
