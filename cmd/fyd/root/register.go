package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"forgeyourday/internal/ui"
)

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("username is required")
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

			password, err := promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Password: ")
			if err != nil {
				return err
			}
			confirm, err := promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return errors.New("passwords do not match")
			}

			if err := svc.Register(ctx, args[0], password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconForge+" Registered ")+ui.Key.Render(args[0]))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Log in with `fyd login "+args[0]+"`"))
			return nil
		},
	}

	return cmd
}
