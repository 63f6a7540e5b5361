package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSequencesCommand creates the sequences command group
func NewSequencesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sequences",
		Aliases: []string{"sequence", "courses"},
		Short:   "Manage sequences",
		Long:    "List sequences and look up a sequence with its subscription stats",
	}

	cmd.AddCommand(newSequencesListCommand())
	cmd.AddCommand(newSequencesFindCommand())

	return cmd
}

func newSequencesListCommand() *cobra.Command {
	var lazy bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sequences",
		Long:  "List all sequences in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			sequences, err := client.Sequences().List(context.Background(), &convertkit.ListOptions{Lazy: lazy})
			if err != nil {
				return fmt.Errorf("failed to list sequences: %w", err)
			}

			return outputSequences(sequences)
		},
	}

	cmd.Flags().BoolVar(&lazy, "lazy", false, "fetch the first page only")

	return cmd
}

func newSequencesFindCommand() *cobra.Command {
	var lazy bool

	cmd := &cobra.Command{
		Use:   "find SEQUENCE_ID",
		Short: "Find a sequence",
		Long:  "Find a sequence by id and report its subscription count (requires the API secret)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sequence id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			sequence, err := client.Sequences().Find(context.Background(), convertkit.SequenceQuery{ID: id, Lazy: lazy})
			if err != nil {
				return fmt.Errorf("failed to find sequence: %w", err)
			}

			return outputSequences([]*convertkit.Course{sequence})
		},
	}

	cmd.Flags().BoolVar(&lazy, "lazy", false, "count subscriptions from the first page only")

	return cmd
}

func outputSequences(sequences []*convertkit.Course) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return encodeEntities(sequences)
	}

	if len(sequences) == 0 {
		_, _ = os.Stdout.WriteString("No sequences found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Subscriptions", "Created")

	for _, sequence := range sequences {
		subscriptions := NotAvailable
		if n, ok := sequence.TotalSubscriptions(); ok {
			subscriptions = strconv.FormatInt(n, 10)
		}

		_ = table.Append(entityID(sequence), entityStr(sequence, "name"),
			subscriptions, entityStr(sequence, "created_at"))
	}

	_ = table.Render()

	return nil
}
