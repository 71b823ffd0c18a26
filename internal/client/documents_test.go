package client_test

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

const uploadTaskID = "3b6f1c6e-7f2a-4b8e-9a6e-2f9f2f1f5a10"

func TestDocumentsUpload(t *testing.T) {
	t.Parallel()

	t.Run("multipart upload returns the task UUID", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/api/documents/post_document/", request.URL.Path)
			require.Equal(t, http.MethodPost, request.Method)

			mediaType, params, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
			require.NoError(t, err)
			require.Equal(t, "multipart/form-data", mediaType)

			reader := multipart.NewReader(request.Body, params["boundary"])
			fields := map[string][]string{}

			var fileName string

			for {
				part, err := reader.NextPart()
				if err != nil {
					break
				}

				data, _ := io.ReadAll(part)

				if part.FileName() != "" {
					fileName = part.FileName()

					continue
				}

				fields[part.FormName()] = append(fields[part.FormName()], string(data))
			}

			assert.Equal(t, "scan.pdf", fileName)
			assert.Equal(t, []string{"Invoice"}, fields["title"])
			assert.Equal(t, []string{"1", "2"}, fields["tags"])
			assert.Equal(t, []string{"4"}, fields["correspondent"])

			writeJSON(t, writer, http.StatusOK, `"`+uploadTaskID+`"`)
		}))
		defer server.Close()

		c := newTestClient(t, server)

		title := "Invoice"
		correspondent := int64(4)

		taskID, err := c.Documents().Create(context.Background(), &paperless.DocumentCreateRequest{
			Document:      []byte("%PDF-1.4"),
			Filename:      "scan.pdf",
			Title:         &title,
			Correspondent: &correspondent,
			Tags:          []int64{1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, uploadTaskID, taskID)
	})

	t.Run("missing content fails before any request", func(t *testing.T) {
		t.Parallel()

		counter := &requestCounter{}
		server := httptest.NewServer(counter.wrap(http.NotFoundHandler()))
		defer server.Close()

		c := newTestClient(t, server)

		_, err := c.Documents().Create(context.Background(), &paperless.DocumentCreateRequest{})

		var draftErr *paperless.DraftFieldRequiredError

		require.ErrorAs(t, err, &draftErr)
		assert.Zero(t, counter.total())
	})
}

func TestDocumentsSearch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "electricity", request.URL.Query().Get("query"))
		writeJSON(t, writer, http.StatusOK, listBody(`[
			{"id": 12, "title": "Bill", "__search_hit__": {"score": 0.9, "highlights": "x", "rank": 0}}
		]`, 1))
	}))
	defer server.Close()

	c := newTestClient(t, server)

	documents, err := c.Documents().Search(context.Background(), "electricity").All()
	require.NoError(t, err)
	require.Len(t, documents, 1)
	require.NotNil(t, documents[0].SearchHit)
	assert.InDelta(t, 0.9, documents[0].SearchHit.Score, 0.001)
}

func TestDocumentsMoreLike(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "12", request.URL.Query().Get("more_like_id"))
		writeJSON(t, writer, http.StatusOK, listBody(`[{"id": 13, "title": "Similar"}]`, 1))
	}))
	defer server.Close()

	c := newTestClient(t, server)

	documents, err := c.Documents().MoreLike(context.Background(), 12).All()
	require.NoError(t, err)
	require.Len(t, documents, 1)
	assert.Equal(t, int64(13), documents[0].ID)
}

func TestDocumentsNextASN(t *testing.T) {
	t.Parallel()

	t.Run("returns the next number", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/documents/next_asn/", request.URL.Path)
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte("1337"))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		asn, err := c.Documents().NextASN(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1337), asn)
	})

	t.Run("server error reports an ASN error with the status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "text/plain")
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte("boom"))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		_, err := c.Documents().NextASN(context.Background())

		var asnErr *paperless.ASNRequestError

		require.ErrorAs(t, err, &asnErr)
		assert.Equal(t, http.StatusInternalServerError, asnErr.StatusCode)
		assert.Contains(t, asnErr.Body, "boom")
	})

	t.Run("unparseable body reports an ASN error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "text/plain")
			_, _ = writer.Write([]byte("not a number"))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		_, err := c.Documents().NextASN(context.Background())

		var asnErr *paperless.ASNRequestError

		require.ErrorAs(t, err, &asnErr)
		assert.Equal(t, "not a number", asnErr.Body)
	})
}

func TestDocumentsDownload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/documents/12/download/", request.URL.Path)
		writer.Header().Set("Content-Type", "application/pdf")
		writer.Header().Set("Content-Disposition", `attachment; filename="bill.pdf"`)
		_, _ = writer.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	c := newTestClient(t, server)

	file, err := c.Documents().Download(context.Background(), 12, paperless.DocumentVersionArchived)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), file.Content)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "bill.pdf", file.Filename)
}

func TestDocumentsMetadataAndSuggestions(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/documents/12/metadata/", func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, http.StatusOK, `{
			"original_checksum": "abc",
			"original_size": 1024,
			"original_mime_type": "application/pdf",
			"media_filename": "0000012.pdf",
			"has_archive_version": true,
			"original_metadata": [{"namespace": "n", "prefix": "p", "key": "k", "value": "v"}],
			"archive_checksum": "def",
			"archive_media_filename": "0000012-archive.pdf",
			"archive_size": 900,
			"archive_metadata": [],
			"lang": "en"
		}`)
	})
	mux.HandleFunc("/api/documents/12/suggestions/", func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, http.StatusOK, `{
			"correspondents": [3],
			"tags": [1, 2],
			"document_types": [],
			"storage_paths": [],
			"dates": ["2024-06-01"]
		}`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server)
	ctx := context.Background()

	metadata, err := c.Documents().Metadata(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", metadata.OriginalMimeType)
	assert.True(t, metadata.HasArchiveVersion)
	require.Len(t, metadata.OriginalMetadata, 1)

	suggestions, err := c.Documents().Suggestions(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, suggestions.Tags)
	require.Len(t, suggestions.Dates, 1)
	assert.Equal(t, "2024-06-01", suggestions.Dates[0].String())
}

func TestDocumentsNotes(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/documents/12/notes/", func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodGet:
			writeJSON(t, writer, http.StatusOK, `[{"id": 1, "note": "first"}]`)
		case http.MethodPost:
			var body map[string]string

			data, _ := io.ReadAll(request.Body)
			require.NoError(t, json.Unmarshal(data, &body))
			assert.Equal(t, "second", body["note"])

			writeJSON(t, writer, http.StatusOK, `[{"id": 1, "note": "first"}, {"id": 5, "note": "second"}]`)
		case http.MethodDelete:
			assert.Equal(t, "5", request.URL.Query().Get("id"))
			writer.WriteHeader(http.StatusNoContent)
		}
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server)
	ctx := context.Background()

	notes, err := c.Documents().Notes(ctx, 12)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	noteID, docID, err := c.Documents().CreateNote(ctx, 12, &paperless.DocumentNoteCreateRequest{Note: "second"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), noteID)
	assert.Equal(t, int64(12), docID)

	require.NoError(t, c.Documents().DeleteNote(ctx, 12, 5))
}

func TestDocumentsBulkEdit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/documents/bulk_edit/", request.URL.Path)

		var body paperless.BulkEditRequest

		data, _ := io.ReadAll(request.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		assert.Equal(t, "add_tag", body.Method)
		assert.Equal(t, []int64{1, 2, 3}, body.Documents)

		writeJSON(t, writer, http.StatusOK, `{"result": "OK"}`)
	}))
	defer server.Close()

	c := newTestClient(t, server)

	err := c.Documents().BulkEdit(context.Background(), &paperless.BulkEditRequest{
		Documents:  []int64{1, 2, 3},
		Method:     "add_tag",
		Parameters: map[string]any{"tag": 4},
	})
	require.NoError(t, err)
}
