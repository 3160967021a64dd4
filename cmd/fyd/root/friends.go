package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"forgeyourday/internal/ui"
)

func newFriendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "List your friends and pending requests",
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

			requests, err := svc.Requests(ctx, user)
			if err != nil {
				return err
			}
			if len(requests) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconUser, "Friend Requests"))
				for _, r := range requests {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", r, ui.Muted.Render("(`fyd friends accept "+r+"`)"))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}

			friends, err := svc.Friends(ctx, user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconFriend, "Your Friends"))
			if len(friends) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No friends yet. Add some!"))
				return nil
			}
			for _, f := range friends {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", f)
			}
			return nil
		},
	}

	cmd.AddCommand(
		newFriendsAddCmd(),
		newFriendsAcceptCmd(),
		newFriendsRejectCmd(),
		newFriendsRemoveCmd(),
	)
	return cmd
}

func oneUsernameArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("username is required")
	}
	return nil
}

func newFriendsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Send a friend request",
		Args:  oneUsernameArg,
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
			if err := svc.SendRequest(ctx, user, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconFriend+" Friend request sent!"))
			return nil
		},
	}

	return cmd
}

func newFriendsAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept <username>",
		Short: "Accept a pending friend request",
		Args:  oneUsernameArg,
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
			if err := svc.AcceptRequest(ctx, user, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s You are now friends with %s!\n", ui.Good.Render(ui.IconFriend), ui.Key.Render(args[0]))
			return nil
		},
	}

	return cmd
}

func newFriendsRejectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject <username>",
		Short: "Reject a pending friend request",
		Args:  oneUsernameArg,
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
			if err := svc.RejectRequest(ctx, user, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Request rejected."))
			return nil
		},
	}

	return cmd
}

func newFriendsRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <username>",
		Short: "Unfriend someone (removes both sides of the edge)",
		Args:  oneUsernameArg,
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
			if err := svc.Unfriend(ctx, user, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Unfriended %s.\n", ui.Warn.Render(ui.IconFriend), args[0])
			return nil
		},
	}

	return cmd
}
