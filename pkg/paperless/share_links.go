package paperless

import "time"

// ShareLink grants unauthenticated access to one document file.
type ShareLink struct {
	ID          int64                `json:"id"           yaml:"id"`
	Created     *time.Time           `json:"created"      yaml:"created"`
	Expiration  *time.Time           `json:"expiration"   yaml:"expiration"`
	Slug        string               `json:"slug"         yaml:"slug"`
	Document    int64                `json:"document"     yaml:"document"`
	FileVersion ShareLinkFileVersion `json:"file_version" yaml:"file_version"`
}

// ShareLinkCreateRequest creates a share link for a document.
type ShareLinkCreateRequest struct {
	Document    *int64               `json:"document"`
	Expiration  *time.Time           `json:"expiration,omitempty"`
	FileVersion ShareLinkFileVersion `json:"file_version,omitempty"`
}

// Validate checks the required fields before any request is sent.
func (r *ShareLinkCreateRequest) Validate() error {
	if r.Document == nil {
		return &DraftFieldRequiredError{Fields: []string{"document"}}
	}

	return nil
}

// ShareLinksClient accesses the share links resource.
type ShareLinksClient interface {
	Getter[ShareLink]
	Lister[ShareLink]
	Creator[ShareLink, ShareLinkCreateRequest]
	Deleter
}
