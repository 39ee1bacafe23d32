package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/vk/kspgrab/internal/app"
	"github.com/vk/kspgrab/internal/taskid"
)

// withApp runs fn with a freshly built App and closes it afterwards.
func withApp(f *flags, outW, errW io.Writer, fn func(a *app.App) error) error {
	a, err := f.newApp(outW, errW)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func newLocateCommand(f *flags, outW, errW io.Writer) *cobra.Command {
	var solution bool
	cmd := &cobra.Command{
		Use:   "locate <task-id>",
		Short: "Print the page and anchor of a task without fetching it",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := taskid.Assignment
			if solution {
				variant = taskid.Solution
			}
			return withApp(f, outW, errW, func(a *app.App) error {
				return a.Locate(cmd.Context(), args[0], variant)
			})
		},
	}
	cmd.Flags().BoolVar(&solution, "solution", false, "Locate the solution instead of the assignment.")
	return cmd
}

func newTaskCommand(f *flags, outW, errW io.Writer, use, short string, variant taskid.Variant) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <task-id>",
		Short: short,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(f, outW, errW, func(a *app.App) error {
				if variant == taskid.Solution {
					return a.Solution(cmd.Context(), args[0])
				}
				return a.Assignment(cmd.Context(), args[0])
			})
		},
	}
}

func newStatusCommand(f *flags, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id>...",
		Short: "Print submission statuses for the years of the given tasks",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(f, outW, errW, func(a *app.App) error {
				return a.Status(cmd.Context(), args)
			})
		},
	}
}

func newGraphCommand(f *flags, outW, errW io.Writer) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the task prerequisite graph",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(f, outW, errW, func(a *app.App) error {
				return a.Graph(cmd.Context(), check)
			})
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Fail when prerequisites form a cycle.")
	return cmd
}

// exactArgs wraps cobra.ExactArgs so that violations are usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

func minArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.MinimumNArgs(n))
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		return nil
	}
}
