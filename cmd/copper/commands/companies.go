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

// NewCompaniesCommand creates the companies command group
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage companies",
		Long:    "List, create, and manage Copper company records",
	}

	cmd.AddCommand(newCompaniesListCommand())
	cmd.AddCommand(newCompaniesGetCommand())
	cmd.AddCommand(newCompaniesCreateCommand())
	cmd.AddCommand(newCompaniesDeleteCommand())

	return cmd
}

func newCompaniesListCommand() *cobra.Command {
	var (
		pageSize   int
		pageNumber int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := &copper.ListOptions{PageSize: pageSize, PageNumber: pageNumber}

			companies, err := client.Companies().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list companies: %w", err)
			}

			done, err := structuredOutput(companies)
			if done || err != nil {
				return err
			}

			if len(companies) == 0 {
				fmt.Println("No companies found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Email Domain", "Websites", "Created")

			for _, company := range companies {
				_ = table.Append(
					formatID(company.ID),
					company.Name,
					formatString(company.EmailDomain),
					strings.Join(company.Websites, ", "),
					formatTimestamp(company.CreatedAt),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of records per page")
	cmd.Flags().IntVar(&pageNumber, "page", 0, "page number")

	return cmd
}

func newCompaniesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a company",
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

			company, err := client.Companies().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get company: %w", err)
			}

			done, err := structuredOutput(company)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", formatID(company.ID))
			_ = table.Append("Name", company.Name)
			_ = table.Append("Email Domain", formatString(company.EmailDomain))
			_ = table.Append("Websites", strings.Join(company.Websites, ", "))
			_ = table.Append("Phone Numbers", strings.Join(company.PhoneNumbers, ", "))
			_ = table.Append("Created", formatTimestamp(company.CreatedAt))

			return table.Render()
		},
	}
}

func newCompaniesCreateCommand() *cobra.Command {
	var (
		name        string
		emailDomain string
		websites    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			company := &copper.Company{
				Name:     name,
				Websites: copper.WebsiteList(websites),
			}

			if emailDomain != "" {
				company.EmailDomain = copper.String(emailDomain)
			}

			created, err := client.Companies().Create(context.Background(), company)
			if err != nil {
				return fmt.Errorf("failed to create company: %w", err)
			}

			done, err := structuredOutput(created)
			if done || err != nil {
				return err
			}

			fmt.Printf("Created company %s (%s)\n", created.Name, formatID(created.ID))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	cmd.Flags().StringVar(&emailDomain, "email-domain", "", "company email domain")
	cmd.Flags().StringSliceVar(&websites, "website", nil, "website URL (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCompaniesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a company",
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

			err = client.Companies().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete company: %w", err)
			}

			fmt.Printf("Deleted company %d\n", id)

			return nil
		},
	}
}
