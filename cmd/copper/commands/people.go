package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPeopleCommand creates the people command group
func NewPeopleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"person"},
		Short:   "Manage people",
		Long:    "List, create, and manage Copper person records",
	}

	cmd.AddCommand(newPeopleListCommand())
	cmd.AddCommand(newPeopleGetCommand())
	cmd.AddCommand(newPeopleCreateCommand())
	cmd.AddCommand(newPeopleDeleteCommand())
	cmd.AddCommand(newPeopleSearchCommand())

	return cmd
}

func newPeopleListCommand() *cobra.Command {
	var (
		pageSize   int
		pageNumber int
		sortBy     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := &copper.ListOptions{
				PageSize:   pageSize,
				PageNumber: pageNumber,
				SortBy:     sortBy,
			}

			people, err := client.People().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list people: %w", err)
			}

			done, err := structuredOutput(people)
			if done || err != nil {
				return err
			}

			if len(people) == 0 {
				fmt.Println("No people found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Emails", "Status", "Created")

			for _, person := range people {
				_ = table.Append(
					formatID(person.ID),
					person.Name,
					strings.Join(person.Emails, ", "),
					formatString(person.Status),
					formatTimestamp(person.CreatedAt),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of records per page")
	cmd.Flags().IntVar(&pageNumber, "page", 0, "page number")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "field to sort by")

	return cmd
}

func newPeopleGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a person",
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

			person, err := client.People().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get person: %w", err)
			}

			done, err := structuredOutput(person)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", formatID(person.ID))
			_ = table.Append("Name", person.Name)
			_ = table.Append("Emails", strings.Join(person.Emails, ", "))
			_ = table.Append("Phone Numbers", strings.Join(person.PhoneNumbers, ", "))
			_ = table.Append("Title", formatString(person.Title))
			_ = table.Append("Status", formatString(person.Status))
			_ = table.Append("Created", formatTimestamp(person.CreatedAt))
			_ = table.Append("Modified", formatTimestamp(person.UpdatedAt))

			return table.Render()
		},
	}
}

func newPeopleCreateCommand() *cobra.Command {
	var (
		name   string
		emails []string
		phones []string
		title  string
		status string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			person := &copper.Person{
				Name:         name,
				Emails:       copper.EmailList(emails),
				PhoneNumbers: copper.PhoneNumberList(phones),
			}

			if title != "" {
				person.Title = copper.String(title)
			}

			if status != "" {
				person.Status = copper.String(status)
			}

			created, err := client.People().Create(context.Background(), person)
			if err != nil {
				return fmt.Errorf("failed to create person: %w", err)
			}

			done, err := structuredOutput(created)
			if done || err != nil {
				return err
			}

			fmt.Printf("Created person %s (%s)\n", created.Name, formatID(created.ID))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "person name (required)")
	cmd.Flags().StringSliceVar(&emails, "email", nil, "email address (repeatable)")
	cmd.Flags().StringSliceVar(&phones, "phone", nil, "phone number (repeatable)")
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&status, "status", "", "contact status (Active, Inactive, Lead, Customer)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPeopleDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a person",
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

			err = client.People().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete person: %w", err)
			}

			fmt.Printf("Deleted person %d\n", id)

			return nil
		},
	}
}

func newPeopleSearchCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search people",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			query := &copper.SearchQuery{}
			if len(args) > 0 {
				query.Query = args[0]
			}

			if status != "" {
				query.Fields = map[string]interface{}{"status": status}
			}

			people, err := client.People().Search(context.Background(), query)
			if err != nil {
				return fmt.Errorf("failed to search people: %w", err)
			}

			done, err := structuredOutput(people)
			if done || err != nil {
				return err
			}

			if len(people) == 0 {
				fmt.Println("No people found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Emails", "Status")

			for _, person := range people {
				_ = table.Append(
					formatID(person.ID),
					person.Name,
					strings.Join(person.Emails, ", "),
					formatString(person.Status),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by contact status")

	return cmd
}
