package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command group.
func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Inspect server health and statistics",
	}

	cmd.AddCommand(newStatusShowCommand())
	cmd.AddCommand(newStatusStatisticsCommand())
	cmd.AddCommand(newStatusRemoteVersionCommand())

	return cmd
}

func newStatusShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the system status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			status, err := client.Status(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(status); handled {
				return err
			}

			fmt.Printf("Server version: %s\n", status.PNGXVersion)
			fmt.Printf("Install type:   %s\n", status.InstallType)
			fmt.Printf("Database:       %s (%s)\n", status.Database.Type, status.Database.Status)
			fmt.Printf("Redis:          %s\n", status.Tasks.RedisStatus)
			fmt.Printf("Celery:         %s\n", status.Tasks.CeleryStatus)
			fmt.Printf("Index:          %s\n", status.Tasks.IndexStatus)
			fmt.Printf("Classifier:     %s\n", status.Tasks.ClassifierStatus)
			fmt.Printf("Storage:        %d of %d bytes free\n", status.Storage.Available, status.Storage.Total)

			return nil
		},
	}
}

func newStatusStatisticsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "statistics",
		Aliases: []string{"stats"},
		Short:   "Show document statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			statistics, err := client.Statistics(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(statistics); handled {
				return err
			}

			fmt.Printf("Documents:      %d\n", statistics.DocumentsTotal)

			if statistics.DocumentsInbox != nil {
				fmt.Printf("Inbox:          %d\n", *statistics.DocumentsInbox)
			}

			fmt.Printf("Tags:           %d\n", statistics.TagCount)
			fmt.Printf("Correspondents: %d\n", statistics.CorrespondentCount)
			fmt.Printf("Document types: %d\n", statistics.DocumentTypeCount)
			fmt.Printf("Characters:     %d\n", statistics.CharacterCount)

			return nil
		},
	}
}

func newStatusRemoteVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remote-version",
		Short: "Check for server updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			remote, err := client.RemoteVersion(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(remote); handled {
				return err
			}

			fmt.Printf("Latest release: %s\n", remote.Version)

			if remote.UpdateAvailable {
				fmt.Println("An update is available.")
			} else {
				fmt.Println("The server is up to date.")
			}

			return nil
		},
	}
}
