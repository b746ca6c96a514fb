package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewOpportunitiesCommand creates the opportunities command group
func NewOpportunitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "opportunities",
		Aliases: []string{"opportunity", "opps"},
		Short:   "Manage opportunities",
		Long:    "List, create, and manage Copper opportunity records",
	}

	cmd.AddCommand(newOpportunitiesListCommand())
	cmd.AddCommand(newOpportunitiesGetCommand())
	cmd.AddCommand(newOpportunitiesCreateCommand())
	cmd.AddCommand(newOpportunitiesDeleteCommand())

	return cmd
}

func formatMonetaryValue(value *decimal.Decimal) string {
	if value == nil {
		return NotAvailable
	}

	return value.StringFixed(2)
}

func newOpportunitiesListCommand() *cobra.Command {
	var (
		pageSize   int
		pageNumber int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List opportunities",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := &copper.ListOptions{PageSize: pageSize, PageNumber: pageNumber}

			opportunities, err := client.Opportunities().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list opportunities: %w", err)
			}

			done, err := structuredOutput(opportunities)
			if done || err != nil {
				return err
			}

			if len(opportunities) == 0 {
				fmt.Println("No opportunities found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Status", "Priority", "Value", "Close Date")

			for _, opportunity := range opportunities {
				_ = table.Append(
					formatID(opportunity.ID),
					opportunity.Name,
					formatString(opportunity.Status),
					formatString(opportunity.Priority),
					formatMonetaryValue(opportunity.MonetaryValue),
					formatTimestamp(opportunity.CloseDate),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of records per page")
	cmd.Flags().IntVar(&pageNumber, "page", 0, "page number")

	return cmd
}

func newOpportunitiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show an opportunity",
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

			opportunity, err := client.Opportunities().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get opportunity: %w", err)
			}

			done, err := structuredOutput(opportunity)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", formatID(opportunity.ID))
			_ = table.Append("Name", opportunity.Name)
			_ = table.Append("Status", formatString(opportunity.Status))
			_ = table.Append("Priority", formatString(opportunity.Priority))
			_ = table.Append("Monetary Value", formatMonetaryValue(opportunity.MonetaryValue))
			_ = table.Append("Close Date", formatTimestamp(opportunity.CloseDate))
			_ = table.Append("Created", formatTimestamp(opportunity.CreatedAt))

			return table.Render()
		},
	}
}

func newOpportunitiesCreateCommand() *cobra.Command {
	var (
		name          string
		status        string
		priority      string
		monetaryValue string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an opportunity",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opportunity := &copper.Opportunity{Name: name}

			if status != "" {
				opportunity.Status = copper.String(status)
			}

			if priority != "" {
				opportunity.Priority = copper.String(priority)
			}

			if monetaryValue != "" {
				value, err := decimal.NewFromString(monetaryValue)
				if err != nil {
					return fmt.Errorf("invalid monetary value: %w", err)
				}

				opportunity.MonetaryValue = &value
			}

			created, err := client.Opportunities().Create(context.Background(), opportunity)
			if err != nil {
				return fmt.Errorf("failed to create opportunity: %w", err)
			}

			done, err := structuredOutput(created)
			if done || err != nil {
				return err
			}

			fmt.Printf("Created opportunity %s (%s)\n", created.Name, formatID(created.ID))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "opportunity name (required)")
	cmd.Flags().StringVar(&status, "status", "", "status (Open, Won, Lost, Abandoned)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (None, Low, Medium, High)")
	cmd.Flags().StringVar(&monetaryValue, "value", "", "monetary value, e.g. 1234.56")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newOpportunitiesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an opportunity",
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

			err = client.Opportunities().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete opportunity: %w", err)
			}

			fmt.Printf("Deleted opportunity %d\n", id)

			return nil
		},
	}
}
