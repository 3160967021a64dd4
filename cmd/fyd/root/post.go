package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"forgeyourday/internal/config"
	"forgeyourday/internal/engine"
	"forgeyourday/internal/ui"
)

func newPostCmd() *cobra.Command {
	var description string
	var imagePath string

	cmd := &cobra.Command{
		Use:   "post <number|text>",
		Short: "Post a completed task to the feed",
		Long:  "Mark one of today's tasks done and share it: a short description and a photo are both required.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task number or text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := requireUser(ctx, svc)
			if err != nil {
				return err
			}
			text, err := resolveTask(ctx, svc, user, args[0])
			if err != nil {
				return err
			}

			image, err := engine.LoadImage(ctx, imagePath, cfg.ImageTimeout)
			if err != nil {
				return err
			}

			id, err := svc.SubmitPost(ctx, engine.SubmitInput{
				Author:      user,
				Task:        text,
				Description: description,
				Image:       image,
				Now:         time.Now(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconPost+" Posted"), text, ui.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "message", "m", "", "How did it go? (required)")
	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the proof photo (required)")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}
