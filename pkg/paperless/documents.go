package paperless

import (
	"context"
	"time"
)

// Document is a single stored document as the server renders it. Integer
// references (correspondent, tags, ...) point at their respective resources.
type Document struct {
	ID                  int64              `json:"id"                        yaml:"id"`
	Correspondent       *int64             `json:"correspondent"             yaml:"correspondent"`
	DocumentType        *int64             `json:"document_type"             yaml:"document_type"`
	StoragePath         *int64             `json:"storage_path"              yaml:"storage_path"`
	Title               string             `json:"title"                     yaml:"title"`
	Content             string             `json:"content,omitempty"         yaml:"content,omitempty"`
	Tags                []int64            `json:"tags"                      yaml:"tags"`
	Created             *time.Time         `json:"created"                   yaml:"created"`
	Modified            *time.Time         `json:"modified,omitempty"        yaml:"modified,omitempty"`
	Added               *time.Time         `json:"added,omitempty"           yaml:"added,omitempty"`
	ArchiveSerialNumber *int64             `json:"archive_serial_number"     yaml:"archive_serial_number"`
	OriginalFileName    *string            `json:"original_file_name"        yaml:"original_file_name"`
	ArchivedFileName    *string            `json:"archived_file_name"        yaml:"archived_file_name"`
	PageCount           *int64             `json:"page_count,omitempty"      yaml:"page_count,omitempty"`
	Owner               *int64             `json:"owner"                     yaml:"owner"`
	UserCanChange       *bool              `json:"user_can_change,omitempty" yaml:"user_can_change,omitempty"`
	Notes               []DocumentNote     `json:"notes,omitempty"           yaml:"notes,omitempty"`
	CustomFields        []CustomFieldValue `json:"custom_fields,omitempty"   yaml:"custom_fields,omitempty"`
	Permissions         *Permissions       `json:"permissions,omitempty"     yaml:"permissions,omitempty"`

	// SearchHit is only present on results of search and more-like queries.
	SearchHit *SearchHit `json:"__search_hit__,omitempty" yaml:"__search_hit__,omitempty"`
}

// TypedCustomFields resolves the document's raw custom-field values against
// the given field definitions. Values whose field id is not present in defs
// come back as UnknownValue.
func (d *Document) TypedCustomFields(defs map[int64]CustomField) []CustomFieldTypedValue {
	if len(d.CustomFields) == 0 {
		return nil
	}

	typed := make([]CustomFieldTypedValue, 0, len(d.CustomFields))

	for _, raw := range d.CustomFields {
		if def, ok := defs[raw.Field]; ok {
			typed = append(typed, ResolveCustomFieldValue(&def, raw))
		} else {
			typed = append(typed, ResolveCustomFieldValue(nil, raw))
		}
	}

	return typed
}

// DocumentNote is one note attached to a document.
type DocumentNote struct {
	ID       int64      `json:"id"                 yaml:"id"`
	Note     string     `json:"note"               yaml:"note"`
	Created  *time.Time `json:"created,omitempty"  yaml:"created,omitempty"`
	Document *int64     `json:"document,omitempty" yaml:"document,omitempty"`
	User     *NoteUser  `json:"user,omitempty"     yaml:"user,omitempty"`
}

// NoteUser identifies the author of a note.
type NoteUser struct {
	ID        int64  `json:"id"         yaml:"id"`
	Username  string `json:"username"   yaml:"username"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name"  yaml:"last_name"`
}

// DocumentNoteCreateRequest creates a note on a document.
type DocumentNoteCreateRequest struct {
	Note string `json:"note"`
}

// Validate checks the required fields.
func (r *DocumentNoteCreateRequest) Validate() error {
	if r.Note == "" {
		return &DraftFieldRequiredError{Fields: []string{"note"}}
	}

	return nil
}

// DocumentCreateRequest uploads a new document. It is serialized as a
// multipart form against the post_document endpoint; the server replies with
// the UUID of the consumption task rather than a document id.
type DocumentCreateRequest struct {
	// Document is the raw file content. Required.
	Document []byte

	// Filename is sent as the file part's name when set.
	Filename string

	Title               *string
	Created             *time.Time
	Correspondent       *int64
	DocumentType        *int64
	StoragePath         *int64
	ArchiveSerialNumber *int64
	Tags                []int64
}

// Validate checks the required fields.
func (r *DocumentCreateRequest) Validate() error {
	if len(r.Document) == 0 {
		return &DraftFieldRequiredError{Fields: []string{"document"}}
	}

	return nil
}

// DocumentMetadata is the server-extracted metadata of a stored document.
type DocumentMetadata struct {
	OriginalChecksum     string         `json:"original_checksum"       yaml:"original_checksum"`
	OriginalSize         int64          `json:"original_size"           yaml:"original_size"`
	OriginalMimeType     string         `json:"original_mime_type"      yaml:"original_mime_type"`
	MediaFilename        string         `json:"media_filename"          yaml:"media_filename"`
	HasArchiveVersion    bool           `json:"has_archive_version"     yaml:"has_archive_version"`
	OriginalMetadata     []MetadataItem `json:"original_metadata"       yaml:"original_metadata"`
	ArchiveChecksum      *string        `json:"archive_checksum"        yaml:"archive_checksum"`
	ArchiveMediaFilename *string        `json:"archive_media_filename"  yaml:"archive_media_filename"`
	ArchiveSize          *int64         `json:"archive_size"            yaml:"archive_size"`
	ArchiveMetadata      []MetadataItem `json:"archive_metadata"        yaml:"archive_metadata"`
	Lang                 string         `json:"lang"                    yaml:"lang"`
}

// MetadataItem is one extracted metadata entry.
type MetadataItem struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Prefix    string `json:"prefix"    yaml:"prefix"`
	Key       string `json:"key"       yaml:"key"`
	Value     string `json:"value"     yaml:"value"`
}

// DocumentSuggestions are the server's classification suggestions for a
// document.
type DocumentSuggestions struct {
	Correspondents []int64 `json:"correspondents" yaml:"correspondents"`
	Tags           []int64 `json:"tags"           yaml:"tags"`
	DocumentTypes  []int64 `json:"document_types" yaml:"document_types"`
	StoragePaths   []int64 `json:"storage_paths"  yaml:"storage_paths"`
	Dates          []Date  `json:"dates"          yaml:"dates"`
}

// DownloadedFile is the payload of a binary file endpoint.
type DownloadedFile struct {
	Content     []byte
	ContentType string
	// Filename is parsed from the Content-Disposition header; empty when the
	// server did not send one.
	Filename string
}

// DocumentVersion selects the stored file variant for download.
type DocumentVersion string

const (
	DocumentVersionArchived DocumentVersion = "archived"
	DocumentVersionOriginal DocumentVersion = "original"
)

// BulkEditRequest applies one operation to a set of documents.
type BulkEditRequest struct {
	Documents  []int64        `json:"documents"`
	Method     string         `json:"method"`
	Parameters map[string]any `json:"parameters"`
}

// DocumentsClient accesses the documents resource and its sub-endpoints.
type DocumentsClient interface {
	Getter[Document]
	Lister[Document]
	Updater[Document]
	Deleter
	Securable

	// Create uploads a document and returns the consumption task UUID.
	Create(ctx context.Context, request *DocumentCreateRequest) (string, error)

	// Search streams documents matching a full-text query; results carry a
	// SearchHit.
	Search(ctx context.Context, query string) *PageIterator[Document]

	// MoreLike streams documents similar to the given one.
	MoreLike(ctx context.Context, documentID int64) *PageIterator[Document]

	// NextASN returns the next free archive serial number.
	NextASN(ctx context.Context) (int64, error)

	// Download fetches the stored file; preview and thumbnail fetch the
	// rendered variants.
	Download(ctx context.Context, documentID int64, version DocumentVersion) (*DownloadedFile, error)
	Preview(ctx context.Context, documentID int64) (*DownloadedFile, error)
	Thumbnail(ctx context.Context, documentID int64) (*DownloadedFile, error)

	// Metadata and Suggestions fetch the respective sub-endpoints.
	Metadata(ctx context.Context, documentID int64) (*DocumentMetadata, error)
	Suggestions(ctx context.Context, documentID int64) (*DocumentSuggestions, error)

	// Notes lists the notes of a document; CreateNote returns the new note id
	// together with the document id; DeleteNote removes one note.
	Notes(ctx context.Context, documentID int64) ([]DocumentNote, error)
	CreateNote(ctx context.Context, documentID int64, request *DocumentNoteCreateRequest) (noteID, docID int64, err error)
	DeleteNote(ctx context.Context, documentID, noteID int64) error

	// BulkEdit applies one operation to several documents at once.
	BulkEdit(ctx context.Context, request *BulkEditRequest) error
}
