package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forgeyourday/internal/ui"
)

func newCommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment <post-id> <text...>",
		Short: "Comment on a post",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("post id and comment text are required")
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
			text := strings.Join(args[1:], " ")
			if err := svc.AddComment(ctx, id, user, text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconComment+" Commented on ")+ui.ShortID(id))
			return nil
		},
	}

	return cmd
}
