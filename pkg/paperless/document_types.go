package paperless

// DocumentType classifies documents by kind.
type DocumentType struct {
	ID                int64             `json:"id"                        yaml:"id"`
	Slug              string            `json:"slug"                      yaml:"slug"`
	Name              string            `json:"name"                      yaml:"name"`
	Match             string            `json:"match"                     yaml:"match"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm"        yaml:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"            yaml:"is_insensitive"`
	DocumentCount     int64             `json:"document_count"            yaml:"document_count"`
	Owner             *int64            `json:"owner"                     yaml:"owner"`
	UserCanChange     *bool             `json:"user_can_change,omitempty" yaml:"user_can_change,omitempty"`
	Permissions       *Permissions      `json:"permissions,omitempty"     yaml:"permissions,omitempty"`
}

// DocumentTypeCreateRequest creates a document type.
type DocumentTypeCreateRequest struct {
	Name              *string            `json:"name"`
	Match             *string            `json:"match,omitempty"`
	MatchingAlgorithm *MatchingAlgorithm `json:"matching_algorithm,omitempty"`
	IsInsensitive     *bool              `json:"is_insensitive,omitempty"`
	Owner             *int64             `json:"owner,omitempty"`
}

// Validate checks the required fields before any request is sent.
func (r *DocumentTypeCreateRequest) Validate() error {
	if r.Name == nil {
		return &DraftFieldRequiredError{Fields: []string{"name"}}
	}

	return nil
}

// DocumentTypesClient accesses the document types resource.
type DocumentTypesClient interface {
	Getter[DocumentType]
	Lister[DocumentType]
	Creator[DocumentType, DocumentTypeCreateRequest]
	Updater[DocumentType]
	Deleter
	Securable
}
