package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// NewCorrespondentsCommand creates the correspondents command group.
func NewCorrespondentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "correspondents",
		Aliases: []string{"correspondent"},
		Short:   "Manage correspondents",
	}

	cmd.AddCommand(newCorrespondentsListCommand())
	cmd.AddCommand(newCorrespondentsCreateCommand())

	return cmd
}

func newCorrespondentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List correspondents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			correspondents, err := client.Correspondents().Iterate(cmd.Context(), nil).All()
			if err != nil {
				return fmt.Errorf("listing correspondents: %w", err)
			}

			if handled, err := renderStructured(correspondents); handled {
				return err
			}

			if len(correspondents) == 0 {
				fmt.Println("No correspondents found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Matching", "Documents", "Last correspondence")

			for _, correspondent := range correspondents {
				last := ""
				if correspondent.LastCorrespondence != nil {
					last = *correspondent.LastCorrespondence
				}

				_ = table.Append(
					strconv.FormatInt(correspondent.ID, 10),
					correspondent.Name,
					correspondent.MatchingAlgorithm.String(),
					strconv.FormatInt(correspondent.DocumentCount, 10),
					last,
				)
			}

			_ = table.Render()

			return nil
		},
	}
}

func newCorrespondentsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a correspondent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			request := &paperless.CorrespondentCreateRequest{Name: &args[0]}

			correspondent, err := client.Correspondents().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("creating correspondent: %w", err)
			}

			fmt.Printf("Created correspondent %d (%s)\n", correspondent.ID, correspondent.Name)

			return nil
		},
	}
}
