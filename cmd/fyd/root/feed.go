package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"forgeyourday/internal/tui"
	"forgeyourday/internal/ui"
)

func newFeedCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show your feed (yours and your friends' posts from the last 24h)",
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

			if interactive {
				return tui.RunFeed(ctx, svc, user, cmd.OutOrStdout())
			}

			now := time.Now()
			posts, err := svc.VisibleFeed(ctx, user, now)
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No completed tasks yet."))
				return nil
			}
			for _, p := range posts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.ShortID(p.ID), ui.Key.Render(p.Author), p.Task, ui.PostTime(p.CreatedAt, now))
				fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", p.Description)
				fmt.Fprintf(cmd.OutOrStdout(), "   %s %d  %s %d\n",
					ui.IconHeart, len(p.LikedBy), ui.IconComment, len(p.Comments))
				for _, c := range p.Comments {
					author := c.Author
					if author == "" {
						author = "someone"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", ui.Muted.Render(author+": "+c.Text))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the feed in the TUI")
	cmd.AddCommand(newFeedClearCmd())

	return cmd
}

func newFeedClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every post in the shared feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := requireUser(ctx, svc); err != nil {
				return err
			}
			if err := svc.ClearFeed(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Feed cleared."))
			return nil
		},
	}

	return cmd
}
