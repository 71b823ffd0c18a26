package client

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strconv"
	"strings"

	internalhttp "github.com/paperless-community/paperless-go/internal/http"
	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// DocumentsClient implements paperless.DocumentsClient.
type DocumentsClient struct {
	*writableClient[paperless.Document]
}

func newDocumentsClient(c *Client) *DocumentsClient {
	return &DocumentsClient{
		writableClient: newWritableClient(c, paperless.ResourceDocuments,
			func(d *paperless.Document) int64 { return d.ID }),
	}
}

// Create uploads a document as a multipart form and returns the UUID of the
// consumption task. The document only gets its id once consumption finishes;
// poll the task to find it.
func (dc *DocumentsClient) Create(ctx context.Context, request *paperless.DocumentCreateRequest) (string, error) {
	if request == nil {
		return "", &paperless.DraftFieldRequiredError{Fields: []string{"document"}}
	}

	err := request.Validate()
	if err != nil {
		return "", err
	}

	fields := make(map[string]any)

	if request.Title != nil {
		fields["title"] = *request.Title
	}

	if request.Created != nil {
		fields["created"] = *request.Created
	}

	if request.Correspondent != nil {
		fields["correspondent"] = strconv.FormatInt(*request.Correspondent, 10)
	}

	if request.DocumentType != nil {
		fields["document_type"] = strconv.FormatInt(*request.DocumentType, 10)
	}

	if request.StoragePath != nil {
		fields["storage_path"] = strconv.FormatInt(*request.StoragePath, 10)
	}

	if request.ArchiveSerialNumber != nil {
		fields["archive_serial_number"] = strconv.FormatInt(*request.ArchiveSerialNumber, 10)
	}

	if len(request.Tags) > 0 {
		fields["tags"] = request.Tags
	}

	file := &internalhttp.FilePart{
		FieldName: "document",
		Filename:  request.Filename,
		Content:   request.Document,
	}

	if file.Filename == "" {
		file.Filename = "document"
	}

	response, err := dc.client.http.PostMultipart(ctx, "/api/documents/post_document/", fields, file)
	if err != nil {
		return "", fmt.Errorf("uploading document: %w", err)
	}

	var taskID string

	err = response.JSON(&taskID)
	if err != nil {
		return "", fmt.Errorf("parsing upload response: %w", err)
	}

	return taskID, nil
}

// Search streams documents matching a full-text query. Each result carries a
// SearchHit with score and highlights.
func (dc *DocumentsClient) Search(ctx context.Context, query string) *paperless.PageIterator[paperless.Document] {
	params := paperless.NewQueryParams().WithQuery(query)

	return dc.Iterate(ctx, params)
}

// MoreLike streams documents similar to the given one.
func (dc *DocumentsClient) MoreLike(ctx context.Context, documentID int64) *paperless.PageIterator[paperless.Document] {
	params := paperless.NewQueryParams()
	params.MoreLikeID = documentID

	return dc.Iterate(ctx, params)
}

// NextASN returns the next free archive serial number. The endpoint renders
// a bare number; anything else, including a non-2xx status, reports an
// ASNRequestError.
func (dc *DocumentsClient) NextASN(ctx context.Context) (int64, error) {
	response, err := dc.client.http.GetRaw(ctx, "/api/documents/next_asn/", nil)
	if err != nil {
		var apiErr *paperless.APIError
		if errors.As(err, &apiErr) {
			return 0, &paperless.ASNRequestError{
				StatusCode: apiErr.StatusCode,
				Body:       apiErr.Error(),
			}
		}

		return 0, fmt.Errorf("getting next ASN: %w", err)
	}

	asn, parseErr := strconv.ParseInt(strings.TrimSpace(string(response.Body)), 10, 64)
	if parseErr != nil {
		return 0, &paperless.ASNRequestError{
			StatusCode: response.StatusCode,
			Body:       string(response.Body),
		}
	}

	return asn, nil
}

func (dc *DocumentsClient) downloadFile(ctx context.Context, path string) (*paperless.DownloadedFile, error) {
	response, err := dc.client.http.GetRaw(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", path, err)
	}

	file := &paperless.DownloadedFile{
		Content:     response.Body,
		ContentType: response.ContentType,
	}

	if disposition := response.Headers.Get("Content-Disposition"); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			file.Filename = params["filename"]
		}
	}

	return file, nil
}

// Download fetches the stored file of a document.
func (dc *DocumentsClient) Download(ctx context.Context, documentID int64, version paperless.DocumentVersion) (*paperless.DownloadedFile, error) {
	path := fmt.Sprintf("/api/documents/%d/download/", documentID)
	if version == paperless.DocumentVersionOriginal {
		path += "?original=true"
	}

	return dc.downloadFile(ctx, path)
}

// Preview fetches the browser preview rendition.
func (dc *DocumentsClient) Preview(ctx context.Context, documentID int64) (*paperless.DownloadedFile, error) {
	return dc.downloadFile(ctx, fmt.Sprintf("/api/documents/%d/preview/", documentID))
}

// Thumbnail fetches the thumbnail image.
func (dc *DocumentsClient) Thumbnail(ctx context.Context, documentID int64) (*paperless.DownloadedFile, error) {
	return dc.downloadFile(ctx, fmt.Sprintf("/api/documents/%d/thumb/", documentID))
}

// Metadata fetches the server-extracted file metadata.
func (dc *DocumentsClient) Metadata(ctx context.Context, documentID int64) (*paperless.DocumentMetadata, error) {
	response, err := dc.client.http.Get(ctx, fmt.Sprintf("/api/documents/%d/metadata/", documentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting metadata of document %d: %w", documentID, err)
	}

	var metadata paperless.DocumentMetadata

	err = response.JSON(&metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata of document %d: %w", documentID, err)
	}

	return &metadata, nil
}

// Suggestions fetches the classification suggestions.
func (dc *DocumentsClient) Suggestions(ctx context.Context, documentID int64) (*paperless.DocumentSuggestions, error) {
	response, err := dc.client.http.Get(ctx, fmt.Sprintf("/api/documents/%d/suggestions/", documentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting suggestions for document %d: %w", documentID, err)
	}

	var suggestions paperless.DocumentSuggestions

	err = response.JSON(&suggestions)
	if err != nil {
		return nil, fmt.Errorf("parsing suggestions for document %d: %w", documentID, err)
	}

	return &suggestions, nil
}

// Notes lists the notes of a document.
func (dc *DocumentsClient) Notes(ctx context.Context, documentID int64) ([]paperless.DocumentNote, error) {
	response, err := dc.client.http.Get(ctx, fmt.Sprintf("/api/documents/%d/notes/", documentID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing notes of document %d: %w", documentID, err)
	}

	var notes []paperless.DocumentNote

	err = response.JSON(&notes)
	if err != nil {
		return nil, fmt.Errorf("parsing notes of document %d: %w", documentID, err)
	}

	return notes, nil
}

// CreateNote adds a note to a document. The server answers with the full
// refreshed note list; the returned ids identify the newest note and its
// document.
func (dc *DocumentsClient) CreateNote(ctx context.Context, documentID int64, request *paperless.DocumentNoteCreateRequest) (int64, int64, error) {
	if request == nil {
		return 0, 0, &paperless.DraftFieldRequiredError{Fields: []string{"note"}}
	}

	err := request.Validate()
	if err != nil {
		return 0, 0, err
	}

	path := fmt.Sprintf("/api/documents/%d/notes/", documentID)

	response, err := dc.client.http.Post(ctx, path, request)
	if err != nil {
		return 0, 0, fmt.Errorf("creating note on document %d: %w", documentID, err)
	}

	var notes []paperless.DocumentNote

	err = response.JSON(&notes)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing notes of document %d: %w", documentID, err)
	}

	var newest int64
	for i := range notes {
		if notes[i].ID > newest {
			newest = notes[i].ID
		}
	}

	return newest, documentID, nil
}

// DeleteNote removes one note from a document.
func (dc *DocumentsClient) DeleteNote(ctx context.Context, documentID, noteID int64) error {
	path := fmt.Sprintf("/api/documents/%d/notes/?id=%d", documentID, noteID)

	_, err := dc.client.http.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting note %d of document %d: %w", noteID, documentID, err)
	}

	return nil
}

// BulkEdit applies one operation to several documents at once.
func (dc *DocumentsClient) BulkEdit(ctx context.Context, request *paperless.BulkEditRequest) error {
	if request == nil || len(request.Documents) == 0 || request.Method == "" {
		return &paperless.DraftFieldRequiredError{Fields: []string{"documents", "method"}}
	}

	_, err := dc.client.http.Post(ctx, "/api/documents/bulk_edit/", request)
	if err != nil {
		return fmt.Errorf("bulk editing documents: %w", err)
	}

	return nil
}
