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

// NewBatchCommand creates the batch command group
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run batch operations",
		Long:  "Create, update, or delete many records in a single run from a JSON file",
	}

	cmd.AddCommand(newBatchCreateCommand())
	cmd.AddCommand(newBatchUpdateCommand())
	cmd.AddCommand(newBatchDeleteCommand())

	return cmd
}

func parseEntityType(value string) (copper.EntityType, error) {
	entityType := copper.EntityType(value)
	if !entityType.Valid() {
		return "", fmt.Errorf("unknown entity type %q (people, companies, opportunities, tasks)", value)
	}

	return entityType, nil
}

func loadBatchRecords(path string, entityType copper.EntityType) ([]interface{}, error) {
	if path == "" {
		return nil, ErrBatchFileRequired
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var raw []json.RawMessage

	err = json.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("batch file must contain a JSON array: %w", err)
	}

	records := make([]interface{}, 0, len(raw))

	for i, entry := range raw {
		record, err := copper.FromWire(entityType, entry)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func renderBatchOutcome(outcome *copper.BatchOutcome) error {
	done, err := structuredOutput(outcome)
	if done || err != nil {
		return err
	}

	fmt.Printf("Total: %d  Succeeded: %d  Failed: %d\n",
		outcome.Summary.Total, outcome.Summary.Succeeded, outcome.Summary.Failed)

	if len(outcome.Results) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("#", "Success", "ID", "Error")

	for i, result := range outcome.Results {
		errMsg := ""
		if result.Error != nil {
			errMsg = result.Error.Message
		}

		_ = table.Append(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%t", result.Success),
			formatID(result.ID),
			errMsg,
		)
	}

	return table.Render()
}

func batchOptionsFromFlags(continueOnError, returnErrors bool) *copper.BatchOptions {
	return &copper.BatchOptions{
		ContinueOnError: continueOnError,
		ReturnErrors:    returnErrors,
	}
}

func newBatchCreateCommand() *cobra.Command {
	var (
		fromFile        string
		continueOnError bool
		returnErrors    bool
	)

	cmd := &cobra.Command{
		Use:   "create TYPE",
		Short: "Create records from a JSON file",
		Long:  "Create records of the given type (people, companies, opportunities, tasks) from a JSON array file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, err := parseEntityType(args[0])
			if err != nil {
				return err
			}

			records, err := loadBatchRecords(fromFile, entityType)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			outcome, err := client.Batch().Create(context.Background(), entityType, records,
				batchOptionsFromFlags(continueOnError, returnErrors))
			if err != nil {
				return fmt.Errorf("batch create failed: %w", err)
			}

			return renderBatchOutcome(outcome)
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "JSON file containing an array of records (required)")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", true, "keep going after a record fails")
	cmd.Flags().BoolVar(&returnErrors, "return-errors", true, "include per-record results in the output")

	return cmd
}

func newBatchUpdateCommand() *cobra.Command {
	var (
		fromFile        string
		continueOnError bool
		returnErrors    bool
	)

	cmd := &cobra.Command{
		Use:   "update TYPE",
		Short: "Update records from a JSON file",
		Long:  "Update records of the given type from a JSON array of {id, record} objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, err := parseEntityType(args[0])
			if err != nil {
				return err
			}

			if fromFile == "" {
				return ErrBatchFileRequired
			}

			data, err := os.ReadFile(fromFile)
			if err != nil {
				return fmt.Errorf("failed to read batch file: %w", err)
			}

			var entries []struct {
				ID     int64           `json:"id"`
				Record json.RawMessage `json:"record"`
			}

			err = json.Unmarshal(data, &entries)
			if err != nil {
				return fmt.Errorf("batch file must contain a JSON array of {id, record} objects: %w", err)
			}

			updates := make([]copper.BatchUpdate, 0, len(entries))

			for i, entry := range entries {
				record, err := copper.FromWire(entityType, entry.Record)
				if err != nil {
					return fmt.Errorf("record %d: %w", i, err)
				}

				updates = append(updates, copper.BatchUpdate{ID: entry.ID, Record: record})
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			outcome, err := client.Batch().Update(context.Background(), entityType, updates,
				batchOptionsFromFlags(continueOnError, returnErrors))
			if err != nil {
				return fmt.Errorf("batch update failed: %w", err)
			}

			return renderBatchOutcome(outcome)
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "JSON file containing an array of {id, record} objects (required)")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", true, "keep going after a record fails")
	cmd.Flags().BoolVar(&returnErrors, "return-errors", true, "include per-record results in the output")

	return cmd
}

func newBatchDeleteCommand() *cobra.Command {
	var (
		continueOnError bool
		returnErrors    bool
	)

	cmd := &cobra.Command{
		Use:   "delete TYPE ID...",
		Short: "Delete records by ID",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, err := parseEntityType(args[0])
			if err != nil {
				return err
			}

			ids := make([]int64, 0, len(args)-1)

			for _, arg := range args[1:] {
				id, err := parseRecordID(arg)
				if err != nil {
					return err
				}

				ids = append(ids, id)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			outcome, err := client.Batch().Delete(context.Background(), entityType, ids,
				batchOptionsFromFlags(continueOnError, returnErrors))
			if err != nil {
				return fmt.Errorf("batch delete failed: %w", err)
			}

			return renderBatchOutcome(outcome)
		},
	}

	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", true, "keep going after a record fails")
	cmd.Flags().BoolVar(&returnErrors, "return-errors", true, "include per-record results in the output")

	return cmd
}
