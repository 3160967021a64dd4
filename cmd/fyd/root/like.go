package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"forgeyourday/internal/engine"
	"forgeyourday/internal/ui"
)

func newLikeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like (or unlike) a post",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("post id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := requireUser(ctx, svc)
			if err != nil {
				return err
			}
			id, err := resolvePostID(ctx, svc, user, args[0])
			if err != nil {
				return err
			}
			if err := svc.ToggleLike(ctx, id, user); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconHeart+" Toggled like on ")+ui.ShortID(id))
			return nil
		},
	}

	return cmd
}

// resolvePostID accepts a full post id or a unique prefix of one, matched
// against the posts the user can currently see.
func resolvePostID(ctx context.Context, svc *engine.Service, user, arg string) (string, error) {
	posts, err := svc.VisibleFeed(ctx, user, time.Now())
	if err != nil {
		return "", err
	}
	var match string
	for _, p := range posts {
		if p.ID == arg {
			return p.ID, nil
		}
		if strings.HasPrefix(p.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("post id %q is ambiguous", arg)
			}
			match = p.ID
		}
	}
	if match == "" {
		return "", engine.ErrPostNotFound
	}
	return match, nil
}
