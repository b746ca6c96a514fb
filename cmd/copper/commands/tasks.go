package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTasksCommand creates the tasks command group
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
		Long:    "List, create, and manage Copper task records",
	}

	cmd.AddCommand(newTasksListCommand())
	cmd.AddCommand(newTasksGetCommand())
	cmd.AddCommand(newTasksCreateCommand())
	cmd.AddCommand(newTasksDeleteCommand())

	return cmd
}

func newTasksListCommand() *cobra.Command {
	var (
		pageSize   int
		pageNumber int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := &copper.ListOptions{PageSize: pageSize, PageNumber: pageNumber}

			tasks, err := client.Tasks().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			done, err := structuredOutput(tasks)
			if done || err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Status", "Priority", "Due Date")

			for _, task := range tasks {
				_ = table.Append(
					formatID(task.ID),
					task.Name,
					formatString(task.Status),
					formatString(task.Priority),
					formatTimestamp(task.DueDate),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of records per page")
	cmd.Flags().IntVar(&pageNumber, "page", 0, "page number")

	return cmd
}

func newTasksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			task, err := client.Tasks().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			done, err := structuredOutput(task)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", formatID(task.ID))
			_ = table.Append("Name", task.Name)
			_ = table.Append("Status", formatString(task.Status))
			_ = table.Append("Priority", formatString(task.Priority))
			_ = table.Append("Due Date", formatTimestamp(task.DueDate))
			_ = table.Append("Reminder", formatTimestamp(task.ReminderDate))
			_ = table.Append("Completed", formatTimestamp(task.CompletedDate))
			_ = table.Append("Created", formatTimestamp(task.CreatedAt))

			return table.Render()
		},
	}
}

func newTasksCreateCommand() *cobra.Command {
	var (
		name     string
		status   string
		priority string
		dueDate  string
		details  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			task := &copper.Task{Name: name}

			if status != "" {
				task.Status = copper.String(status)
			}

			if priority != "" {
				task.Priority = copper.String(priority)
			}

			if details != "" {
				task.Details = copper.String(details)
			}

			if dueDate != "" {
				due, err := time.Parse("2006-01-02", dueDate)
				if err != nil {
					return fmt.Errorf("invalid due date: %w", err)
				}

				task.DueDate = copper.NewTimestamp(due)
			}

			created, err := client.Tasks().Create(context.Background(), task)
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			done, err := structuredOutput(created)
			if done || err != nil {
				return err
			}

			fmt.Printf("Created task %s (%s)\n", created.Name, formatID(created.ID))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "task name (required)")
	cmd.Flags().StringVar(&status, "status", "", "status (Open, Completed)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (None, Low, Medium, High)")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "due date in YYYY-MM-DD format")
	cmd.Flags().StringVar(&details, "details", "", "task details")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTasksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			err = client.Tasks().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			fmt.Printf("Deleted task %d\n", id)

			return nil
		},
	}
}
