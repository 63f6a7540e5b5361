package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTagsCommand creates the tags command group
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List, create and look up tags",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsCreateCommand())
	cmd.AddCommand(newTagsFindCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var lazy bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List all tags in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(context.Background(), &convertkit.ListOptions{Lazy: lazy})
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			return outputTags(tags)
		},
	}

	cmd.Flags().BoolVar(&lazy, "lazy", false, "fetch the first page only")

	return cmd
}

func newTagsCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a tag",
		Long:  "Create a new tag with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Create(context.Background(), args[0], description)
			if err != nil {
				return fmt.Errorf("failed to create tag: %w", err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return encodeEntity(tag)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created tag '%s' with id %s\n", entityStr(tag, "name"), entityID(tag))

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "tag description")

	return cmd
}

func newTagsFindCommand() *cobra.Command {
	var (
		tagID   int64
		tagName string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a tag",
		Long:  "Find the first tag matching an id or name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tagID == 0 && tagName == "" {
				return ErrTagIDOrNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Find(context.Background(), convertkit.TagQuery{ID: tagID, Name: tagName})
			if err != nil {
				return fmt.Errorf("failed to find tag: %w", err)
			}

			if tag == nil {
				return fmt.Errorf("%w: id=%d name=%q", ErrTagNotFound, tagID, tagName)
			}

			return outputTags([]*convertkit.Tag{tag})
		},
	}

	cmd.Flags().Int64Var(&tagID, "id", 0, "tag id")
	cmd.Flags().StringVar(&tagName, "name", "", "tag name")

	return cmd
}

func outputTags(tags []*convertkit.Tag) error {
	output := viper.GetString("output")
	if output == OutputFormatJSON || output == OutputFormatYAML {
		return encodeEntities(tags)
	}

	if len(tags) == 0 {
		_, _ = os.Stdout.WriteString("No tags found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Created")

	for _, tag := range tags {
		_ = table.Append(entityID(tag), entityStr(tag, "name"), entityStr(tag, "created_at"))
	}

	_ = table.Render()

	return nil
}
