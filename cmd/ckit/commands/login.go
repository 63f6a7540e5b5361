package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/convertkit-go/convertkit/internal/constants"
	"github.com/convertkit-go/convertkit/pkg/ckclient"
	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiKey    string
		apiSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store ConvertKit credentials",
		Long:  "Verify an API key and secret against the API and save them to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API key: ")
				apiKey, _ = reader.ReadString('\n')
				apiKey = strings.TrimSpace(apiKey)
			}

			if apiKey == "" {
				return constants.ErrNoCredentials
			}

			if apiSecret == "" {
				fmt.Print("API secret (optional, press enter to skip): ")

				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API secret: %w", err)
				}

				apiSecret = strings.TrimSpace(string(byteSecret))
				fmt.Println()
			}

			client, err := ckclient.New(&convertkit.Config{
				APIKey:    apiKey,
				APISecret: apiSecret,
				BaseURL:   viper.GetString("base_url"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials before saving anything. The account
			// endpoint needs the secret; the forms list only the key.
			ctx := context.Background()
			if apiSecret != "" {
				if _, err := client.Account(ctx); err != nil {
					return fmt.Errorf("failed to verify credentials: %w", err)
				}
			} else {
				if _, err := client.Forms().List(ctx, &convertkit.ListOptions{Lazy: true}); err != nil {
					return fmt.Errorf("failed to verify API key: %w", err)
				}
			}

			if err := saveCredentials(apiKey, apiSecret); err != nil {
				return err
			}

			fmt.Println("Successfully logged in")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "ConvertKit API key")
	cmd.Flags().StringVar(&apiSecret, "api-secret", "", "ConvertKit API secret")

	return cmd
}

// saveCredentials writes the credentials to ~/.ckit/config.yml, preserving
// any other settings already stored there.
func saveCredentials(apiKey, apiSecret string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}

	configDir := filepath.Join(home, ".ckit")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	settings := map[string]interface{}{}
	if data, err := os.ReadFile(configPath); err == nil {
		_ = yaml.Unmarshal(data, &settings)
	}

	settings["api_key"] = apiKey
	if apiSecret != "" {
		settings["api_secret"] = apiSecret
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(configPath, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	return nil
}
