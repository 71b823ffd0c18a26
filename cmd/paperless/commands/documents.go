package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// NewDocumentsCommand creates the documents command group.
func NewDocumentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"document", "docs"},
		Short:   "Manage documents",
		Long:    "List, search, show, download, and upload documents",
	}

	cmd.AddCommand(newDocumentsListCommand())
	cmd.AddCommand(newDocumentsGetCommand())
	cmd.AddCommand(newDocumentsSearchCommand())
	cmd.AddCommand(newDocumentsDownloadCommand())
	cmd.AddCommand(newDocumentsUploadCommand())

	return cmd
}

func newDocumentsListCommand() *cobra.Command {
	var (
		tagID    int64
		ordering string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			params := paperless.NewQueryParams()
			if tagID > 0 {
				params.WithFilter("tags__id__in", strconv.FormatInt(tagID, 10))
			}

			if ordering != "" {
				params.WithOrdering(ordering)
			}

			if pageSize > 0 {
				params.WithPageSize(pageSize)
			}

			page, err := client.Documents().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("listing documents: %w", err)
			}

			if handled, err := renderStructured(page.Results); handled {
				return err
			}

			if len(page.Results) == 0 {
				fmt.Println("No documents found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "Correspondent", "Type", "ASN", "Created")

			for _, doc := range page.Results {
				created := ""
				if doc.Created != nil {
					created = doc.Created.Format("2006-01-02")
				}

				_ = table.Append(
					strconv.FormatInt(doc.ID, 10),
					doc.Title,
					formatID(doc.Correspondent),
					formatID(doc.DocumentType),
					formatID(doc.ArchiveSerialNumber),
					created,
				)
			}

			_ = table.Render()

			fmt.Printf("\nShowing %d of %d documents\n", len(page.Results), page.Count)

			return nil
		},
	}

	cmd.Flags().Int64Var(&tagID, "tag", 0, "filter by tag id")
	cmd.Flags().StringVar(&ordering, "ordering", "", "sort field, prefix with - for descending")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of documents per page")

	return cmd
}

func newDocumentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrDocumentIDRequired
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			doc, err := client.Documents().Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("getting document %d: %w", id, err)
			}

			if handled, err := renderStructured(doc); handled {
				return err
			}

			fmt.Printf("ID:            %d\n", doc.ID)
			fmt.Printf("Title:         %s\n", doc.Title)
			fmt.Printf("Correspondent: %s\n", formatID(doc.Correspondent))
			fmt.Printf("Type:          %s\n", formatID(doc.DocumentType))
			fmt.Printf("Storage path:  %s\n", formatID(doc.StoragePath))
			fmt.Printf("ASN:           %s\n", formatID(doc.ArchiveSerialNumber))
			fmt.Printf("Created:       %s\n", formatTime(doc.Created))
			fmt.Printf("Added:         %s\n", formatTime(doc.Added))
			fmt.Printf("Tags:          %v\n", doc.Tags)

			return nil
		},
	}
}

func newDocumentsSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			iterator := client.Documents().Search(cmd.Context(), args[0])

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "Score")

			count := 0

			for iterator.HasNext() {
				doc, err := iterator.Next()
				if err != nil {
					return fmt.Errorf("searching documents: %w", err)
				}

				score := ""
				if doc.SearchHit != nil {
					score = strconv.FormatFloat(doc.SearchHit.Score, 'f', 3, 64)
				}

				_ = table.Append(strconv.FormatInt(doc.ID, 10), doc.Title, score)

				count++
				if limit > 0 && count >= limit {
					break
				}
			}

			if count == 0 {
				fmt.Println("No documents found")

				return nil
			}

			_ = table.Render()

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 25, "maximum number of results, 0 for all")

	return cmd
}

func newDocumentsDownloadCommand() *cobra.Command {
	var (
		output   string
		original bool
	)

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a document file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return ErrDocumentIDRequired
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			version := paperless.DocumentVersionArchived
			if original {
				version = paperless.DocumentVersionOriginal
			}

			file, err := client.Documents().Download(cmd.Context(), id, version)
			if err != nil {
				return fmt.Errorf("downloading document %d: %w", id, err)
			}

			target := output
			if target == "" {
				target = file.Filename
			}

			if target == "" {
				target = fmt.Sprintf("document-%d", id)
			}

			err = os.WriteFile(target, file.Content, 0o644)
			if err != nil {
				return fmt.Errorf("writing %s: %w", target, err)
			}

			fmt.Printf("Wrote %d bytes to %s\n", len(file.Content), target)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output-file", "o", "", "target filename")
	cmd.Flags().BoolVar(&original, "original", false, "download the original instead of the archived version")

	return cmd
}

func newDocumentsUploadCommand() *cobra.Command {
	var (
		title string
		tags  []int64
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document",
		Long:  "Upload a file for consumption. Prints the task UUID to follow with 'paperless tasks get'.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			request := &paperless.DocumentCreateRequest{
				Document: content,
				Filename: filepath.Base(args[0]),
				Tags:     tags,
			}

			if title != "" {
				request.Title = &title
			}

			taskID, err := client.Documents().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("uploading %s: %w", args[0], err)
			}

			fmt.Printf("Upload accepted, task %s\n", taskID)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "document title")
	cmd.Flags().Int64SliceVar(&tags, "tag", nil, "tag id to assign, repeatable")

	return cmd
}
