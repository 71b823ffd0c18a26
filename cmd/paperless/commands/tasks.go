package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTasksCommand creates the tasks command group.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Follow background tasks",
	}

	cmd.AddCommand(newTasksListCommand())
	cmd.AddCommand(newTasksGetCommand())
	cmd.AddCommand(newTasksAckCommand())

	return cmd
}

func newTasksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List background tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			tasks, err := client.Tasks().Iterate(cmd.Context(), nil).All()
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			if handled, err := renderStructured(tasks); handled {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "UUID", "File", "Status", "Done")

			for _, task := range tasks {
				file := ""
				if task.TaskFileName != nil {
					file = *task.TaskFileName
				}

				_ = table.Append(
					strconv.FormatInt(task.ID, 10),
					task.TaskID,
					file,
					string(task.Status),
					formatTime(task.DateDone),
				)
			}

			_ = table.Render()

			return nil
		},
	}
}

func newTasksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <uuid>",
		Short: "Show one task by its queue UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			task, err := client.Tasks().GetByUUID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := renderStructured(task); handled {
				return err
			}

			fmt.Printf("ID:      %d\n", task.ID)
			fmt.Printf("UUID:    %s\n", task.TaskID)
			fmt.Printf("Status:  %s\n", task.Status)
			fmt.Printf("Created: %s\n", formatTime(task.DateCreated))
			fmt.Printf("Done:    %s\n", formatTime(task.DateDone))

			if task.Result != nil {
				fmt.Printf("Result:  %s\n", *task.Result)
			}

			return nil
		},
	}
}

func newTasksAckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ack <id>...",
		Short: "Acknowledge finished tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))

			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid task id %q", arg)
				}

				ids = append(ids, id)
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			err = client.Tasks().Acknowledge(cmd.Context(), ids...)
			if err != nil {
				return err
			}

			fmt.Printf("Acknowledged %d task(s)\n", len(ids))

			return nil
		},
	}
}
