package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsCreateCommand())
	cmd.AddCommand(newTagsDeleteCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			tags, err := client.Tags().Iterate(cmd.Context(), nil).All()
			if err != nil {
				return fmt.Errorf("listing tags: %w", err)
			}

			if handled, err := renderStructured(tags); handled {
				return err
			}

			if len(tags) == 0 {
				fmt.Println("No tags found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Color", "Matching", "Documents")

			for _, tag := range tags {
				_ = table.Append(
					strconv.FormatInt(tag.ID, 10),
					tag.Name,
					tag.Color,
					tag.MatchingAlgorithm.String(),
					strconv.FormatInt(tag.DocumentCount, 10),
				)
			}

			_ = table.Render()

			return nil
		},
	}
}

func newTagsCreateCommand() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			request := &paperless.TagCreateRequest{Name: &args[0]}
			if color != "" {
				request.Color = &color
			}

			tag, err := client.Tags().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("creating tag: %w", err)
			}

			fmt.Printf("Created tag %d (%s)\n", tag.ID, tag.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "tag color, e.g. #ff0000")

	return cmd
}

func newTagsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrTagNotFound
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			deleted, err := client.Tags().Delete(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("deleting tag %d: %w", id, err)
			}

			if !deleted {
				return ErrTagNotFound
			}

			fmt.Printf("Deleted tag %d\n", id)

			return nil
		},
	}
}
