package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRateLimitsCommand creates the rate-limits command
func NewRateLimitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rate-limits",
		Aliases: []string{"limits"},
		Short:   "Show API rate limit status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			limits, err := client.RateLimits(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get rate limits: %w", err)
			}

			done, err := structuredOutput(limits)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Requests Per Second", strconv.FormatInt(limits.RequestsPerSecond, 10))
			_ = table.Append("Requests Per Hour", strconv.FormatInt(limits.RequestsPerHour, 10))
			_ = table.Append("Remaining This Second", strconv.FormatInt(limits.RemainingThisSecond, 10))
			_ = table.Append("Remaining This Hour", strconv.FormatInt(limits.RemainingThisHour, 10))
			_ = table.Append("Reset At", time.Unix(limits.ResetAt, 0).UTC().Format(time.RFC3339))

			return table.Render()
		},
	}
}
