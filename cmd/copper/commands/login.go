package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/fivetwenty-io/copper-client/pkg/copperclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		email       string
		apiKey      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Copper",
		Long:  "Store Copper API credentials after verifying them against the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if email == "" {
				email = viper.GetString("email")
			}

			if email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return fmt.Errorf("email is required")
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(byteKey)

				fmt.Println()
			}

			if apiKey == "" {
				return fmt.Errorf("API key is required")
			}

			config := &copper.Config{
				APIKey:    apiKey,
				UserEmail: email,
				BaseURL:   apiEndpoint,
			}

			client, err := copperclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials before persisting them.
			_, err = client.RateLimits(context.Background())
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			viper.Set("api_key", apiKey)
			viper.Set("email", email)

			if apiEndpoint != "" {
				viper.Set("api", apiEndpoint)
			}

			err = saveConfig()
			if err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			fmt.Printf("Logged in as %s\n", email)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint")
	cmd.Flags().StringVarP(&email, "email", "e", "", "user email")
	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "API key")

	return cmd
}
