package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/copper-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	API     string `json:"api,omitempty"     yaml:"api,omitempty"`
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Email   string `json:"email,omitempty"   yaml:"email,omitempty"`
	Output  string `json:"output,omitempty"  yaml:"output,omitempty"`
	Verbose bool   `json:"verbose"           yaml:"verbose"`
}

// configKeys lists the settings the set/unset commands accept.
var configKeys = map[string]bool{
	"api":     true,
	"api_key": true,
	"email":   true,
	"output":  true,
	"verbose": true,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage copper CLI configuration including credentials and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			done, err := structuredOutput(config)
			if done || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Setting", "Value")
			_ = table.Append("api", config.API)
			_ = table.Append("api_key", maskSecret(config.APIKey))
			_ = table.Append("email", config.Email)
			_ = table.Append("output", config.Output)
			_ = table.Append("verbose", fmt.Sprintf("%t", config.Verbose))

			return table.Render()
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !configKeys[key] {
				return fmt.Errorf("unknown configuration key %q", key)
			}

			viper.Set(key, value)

			err := saveConfig()
			if err != nil {
				return err
			}

			if key == "api_key" {
				value = maskSecret(value)
			}

			fmt.Printf("Set %s to %s\n", key, value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !configKeys[key] {
				return fmt.Errorf("unknown configuration key %q", key)
			}

			viper.Set(key, "")

			err := saveConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

// maskSecret hides all but the last four characters of a secret.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= 4 {
		return "****"
	}

	return "****" + secret[len(secret)-4:]
}

func loadConfig() *Config {
	return &Config{
		API:     viper.GetString("api"),
		APIKey:  viper.GetString("api_key"),
		Email:   viper.GetString("email"),
		Output:  viper.GetString("output"),
		Verbose: viper.GetBool("verbose"),
	}
}

func saveConfig() error {
	return saveConfigStruct(loadConfig())
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".copper")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
