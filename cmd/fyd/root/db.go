package root

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"forgeyourday/internal/config"
	"forgeyourday/internal/engine"
	"forgeyourday/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return engine.NewService(db), cleanup, nil
}

// requireUser returns the logged-in username or an error telling the user
// to log in first.
func requireUser(ctx context.Context, svc *engine.Service) (string, error) {
	name, err := svc.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("log in first with `fyd login <username>`: %w", err)
	}
	return name, nil
}

func promptLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
