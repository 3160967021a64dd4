package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"forgeyourday/internal/engine"
	"forgeyourday/internal/ui"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show today's tasks",
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
			view, err := svc.CheckStatus(ctx, user, time.Now())
			if err != nil {
				return err
			}
			printTaskView(cmd, view)
			return nil
		},
	}

	cmd.AddCommand(newTasksSetCmd(), newTasksAddCmd(), newTasksDoneCmd())
	return cmd
}

func printTaskView(cmd *cobra.Command, view *engine.TaskView) {
	if view.NeedsSetup {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No tasks set for today."))
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("What will you forge today? `fyd tasks set \"Run 5k\" \"Read\"`"))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Today's Tasks"))
	for i, t := range view.Tasks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render(strconv.Itoa(i+1)+"."), t)
	}
	if len(view.Tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(all done — post the proof with `fyd post`)"))
	}
}

func newTasksSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <task> [task...]",
		Short: "Set today's tasks (replaces any prior list)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one task is required")
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
			saved, err := svc.SaveTasks(ctx, user, args, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) saved. They expire at the end of the day.\n", ui.Good.Render(ui.IconTask+" Forged!"), len(saved))
			return nil
		},
	}

	return cmd
}

func newTasksAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Add one more task to today's list",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task text is required")
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
			if err := svc.AppendTask(ctx, user, args[0], time.Now()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconTask+" Added ")+args[0])
			return nil
		},
	}

	return cmd
}

func newTasksDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <number|text>",
		Short: "Strike a task off today's list without posting",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task number or text is required")
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
			text, err := resolveTask(ctx, svc, user, args[0])
			if err != nil {
				return err
			}
			if err := svc.MarkTaskDone(ctx, user, text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Done ")+text)
			return nil
		},
	}

	return cmd
}

// resolveTask turns a 1-based list number into the task text; anything that
// is not a number is taken as the text itself.
func resolveTask(ctx context.Context, svc *engine.Service, user, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}
	view, err := svc.CheckStatus(ctx, user, time.Now())
	if err != nil {
		return "", err
	}
	if view.NeedsSetup || n < 1 || n > len(view.Tasks) {
		return "", fmt.Errorf("no task #%d today", n)
	}
	return view.Tasks[n-1], nil
}
