package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRelatedCommand creates the related command
func NewRelatedCommand() *cobra.Command {
	var (
		pageSize   int
		pageNumber int
	)

	cmd := &cobra.Command{
		Use:   "related TYPE ID RELATED_TYPE",
		Short: "List records related to a record",
		Long: "List records of RELATED_TYPE linked to the record identified by TYPE and ID.\n" +
			"RELATED_TYPE may be people, companies, opportunities, tasks, or activities.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, err := parseEntityType(args[0])
			if err != nil {
				return err
			}

			id, err := parseRecordID(args[1])
			if err != nil {
				return err
			}

			relatedType := copper.RelatedType(args[2])

			client, err := createClient()
			if err != nil {
				return err
			}

			var opts *copper.PageOptions
			if pageSize > 0 || pageNumber > 0 {
				opts = &copper.PageOptions{PageSize: pageSize, PageNumber: pageNumber}
			}

			related, err := client.Related().List(context.Background(), entityType, id, relatedType, opts)
			if err != nil {
				return fmt.Errorf("failed to list related records: %w", err)
			}

			done, err := structuredOutput(related)
			if done || err != nil {
				return err
			}

			if relatedType == copper.RelatedActivities {
				return renderRawActivities(related.Activities)
			}

			return renderRelatedRecords(related.Data)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of records per page")
	cmd.Flags().IntVar(&pageNumber, "page", 0, "page number")

	return cmd
}

func renderRawActivities(activities []json.RawMessage) error {
	if len(activities) == 0 {
		fmt.Println("No activities found")

		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(activities)
}

func renderRelatedRecords(records []interface{}) error {
	if len(records) == 0 {
		fmt.Println("No related records found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name")

	for _, record := range records {
		switch entity := record.(type) {
		case *copper.Person:
			_ = table.Append(formatID(entity.ID), entity.Name)
		case *copper.Company:
			_ = table.Append(formatID(entity.ID), entity.Name)
		case *copper.Opportunity:
			_ = table.Append(formatID(entity.ID), entity.Name)
		case *copper.Task:
			_ = table.Append(formatID(entity.ID), entity.Name)
		}
	}

	return table.Render()
}
