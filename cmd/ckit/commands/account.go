package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAccountCommand creates the account command
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account details",
		Long:  "Show details of the authenticated account (requires the API secret)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.Account(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch account: %w", err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return encodeEntity(account)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", entityStr(account, "name"))
			_ = table.Append("Primary email", entityStr(account, "primary_email_address"))
			_ = table.Append("Plan", entityStr(account, "plan_type"))
			_ = table.Render()

			return nil
		},
	}
}
