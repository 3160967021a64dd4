package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"forgeyourday/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
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
			done, err := svc.CompletedToday(ctx, user, time.Now())
			if err != nil {
				return err
			}
			friends, err := svc.Friends(ctx, user)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconUser, user))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks completed today", done))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Friends", len(friends)))
			return nil
		},
	}

	cmd.AddCommand(newProfileRenameCmd())
	return cmd
}

func newProfileRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <new-username>",
		Short: "Change your username everywhere",
		Long:  "Change your username. Your tasks, posts, likes, comments and friendships all move with you.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("new username is required")
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
			if err := svc.Rename(ctx, user, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n", ui.Good.Render(ui.IconUser+" Renamed"), user, ui.Key.Render(args[0]))
			return nil
		},
	}

	return cmd
}
