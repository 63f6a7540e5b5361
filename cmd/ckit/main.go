package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/convertkit-go/convertkit/cmd/ckit/commands"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ckit",
	Short: "ConvertKit v3 API CLI",
	Long: `A command-line interface for the ConvertKit v3 API.

This CLI provides access to ConvertKit resources including forms, tags,
sequences, subscribers and account details.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.ckit/config.yml)")
	rootCmd.PersistentFlags().StringP("credentials", "C", "", "credentials file with api_key and api_secret")
	rootCmd.PersistentFlags().String("api-key", "", "ConvertKit API key")
	rootCmd.PersistentFlags().String("api-secret", "", "ConvertKit API secret")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL override")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "log HTTP requests and responses")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("credentials", rootCmd.PersistentFlags().Lookup("credentials"))
	viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	viper.BindPFlag("api_secret", rootCmd.PersistentFlags().Lookup("api-secret"))
	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewFormsCommand())
	rootCmd.AddCommand(commands.NewTagsCommand())
	rootCmd.AddCommand(commands.NewSequencesCommand())
	rootCmd.AddCommand(commands.NewAccountCommand())
}

func initConfig() {
	// Pick up CONVERTKIT_* credentials from a local .env when present
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.ckit/config.yml
		viper.AddConfigPath(filepath.Join(home, ".ckit"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("CONVERTKIT")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
