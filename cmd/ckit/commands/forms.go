package commands

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewFormsCommand creates the forms command group
func NewFormsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "forms",
		Aliases: []string{"form"},
		Short:   "Manage forms",
		Long:    "List forms, look up a single form and manage its subscribers",
	}

	cmd.AddCommand(newFormsListCommand())
	cmd.AddCommand(newFormsFindCommand())
	cmd.AddCommand(newFormsSubscribersCommand())
	cmd.AddCommand(newFormsSubscribeCommand())

	return cmd
}

func newFormsListCommand() *cobra.Command {
	var lazy bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List forms",
		Long:  "List all forms in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			forms, err := client.Forms().List(context.Background(), &convertkit.ListOptions{Lazy: lazy})
			if err != nil {
				return fmt.Errorf("failed to list forms: %w", err)
			}

			return outputForms(forms)
		},
	}

	cmd.Flags().BoolVar(&lazy, "lazy", false, "fetch the first page only")

	return cmd
}

func newFormsFindCommand() *cobra.Command {
	var (
		formID   int64
		formName string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a single form",
		Long:  "Find exactly one form by id, name or both",
		RunE: func(cmd *cobra.Command, args []string) error {
			if formID == 0 && formName == "" {
				return ErrFormIDOrNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			form, err := client.Forms().Find(context.Background(), convertkit.FormQuery{ID: formID, Name: formName})
			if err != nil {
				return err
			}

			return outputForms([]*convertkit.Form{form})
		},
	}

	cmd.Flags().Int64Var(&formID, "id", 0, "form id")
	cmd.Flags().StringVar(&formName, "name", "", "form name")

	return cmd
}

func newFormsSubscribersCommand() *cobra.Command {
	opts := &convertkit.SubscriptionListOptions{}

	cmd := &cobra.Command{
		Use:   "subscribers FORM_ID_OR_NAME",
		Short: "List form subscribers",
		Long:  "List subscriptions to a form (requires the API secret)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			form, err := findFormByIDOrName(ctx, client, args[0])
			if err != nil {
				return err
			}

			subscriptions, err := form.ListSubscriptions(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list subscribers: %w", err)
			}

			return outputSubscriptions(subscriptions)
		},
	}

	cmd.Flags().StringVar(&opts.SortOrder, "sort-order", "", "sort order (asc, desc)")
	cmd.Flags().StringVar(&opts.SubscriberState, "state", "", "subscriber state filter (active, cancelled)")
	cmd.Flags().BoolVar(&opts.Lazy, "lazy", false, "fetch the first page only")

	return cmd
}

func newFormsSubscribeCommand() *cobra.Command {
	var (
		firstName string
		params    map[string]string
	)

	cmd := &cobra.Command{
		Use:   "subscribe FORM_ID_OR_NAME EMAIL",
		Short: "Subscribe an email address to a form",
		Long:  "Add a subscriber to a form, optionally with a first name and extra fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			form, err := findFormByIDOrName(ctx, client, args[0])
			if err != nil {
				return err
			}

			extra := url.Values{}
			for key, value := range params {
				extra.Set(key, value)
			}

			subscription, err := form.AddSubscriber(ctx, args[1], firstName, extra)
			if err != nil {
				return fmt.Errorf("failed to subscribe %s: %w", args[1], err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return encodeEntity(subscription)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Subscribed '%s' to form '%s'\n", args[1], entityStr(form, "name"))

			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "subscriber first name")
	cmd.Flags().StringToStringVar(&params, "param", nil, "extra subscribe parameters (key=value)")

	return cmd
}

// findFormByIDOrName resolves a positional argument to a form. Numeric
// input is treated as an id, anything else as a name.
func findFormByIDOrName(ctx context.Context, client convertkit.Client, idOrName string) (*convertkit.Form, error) {
	query := convertkit.FormQuery{}
	if id, ok := parseID(idOrName); ok {
		query.ID = id
	} else {
		query.Name = idOrName
	}

	form, err := client.Forms().Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find form: %w", err)
	}

	return form, nil
}

func outputForms(forms []*convertkit.Form) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return encodeEntities(forms)
	}

	if len(forms) == 0 {
		_, _ = os.Stdout.WriteString("No forms found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Title", "Type")

	for _, form := range forms {
		_ = table.Append(entityID(form), entityStr(form, "name"),
			entityStr(form, "title"), entityStr(form, "type"))
	}

	_ = table.Render()

	return nil
}

func outputSubscriptions(subscriptions []*convertkit.Subscription) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return encodeEntities(subscriptions)
	}

	if len(subscriptions) == 0 {
		_, _ = os.Stdout.WriteString("No subscriptions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "State", "Created")

	for _, subscription := range subscriptions {
		email := NotAvailable
		if subscriber := subscription.Subscriber(); subscriber != nil {
			if addr, err := subscriber.Email(); err == nil {
				email = addr
			}
		}

		_ = table.Append(entityID(subscription), email,
			entityStr(subscription, "state"), entityStr(subscription, "created_at"))
	}

	_ = table.Render()

	return nil
}
