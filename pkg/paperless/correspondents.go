package paperless

// Correspondent is a document correspondent.
type Correspondent struct {
	ID                 int64             `json:"id"                           yaml:"id"`
	Slug               string            `json:"slug"                         yaml:"slug"`
	Name               string            `json:"name"                         yaml:"name"`
	Match              string            `json:"match"                        yaml:"match"`
	MatchingAlgorithm  MatchingAlgorithm `json:"matching_algorithm"           yaml:"matching_algorithm"`
	IsInsensitive      bool              `json:"is_insensitive"               yaml:"is_insensitive"`
	DocumentCount      int64             `json:"document_count"               yaml:"document_count"`
	LastCorrespondence *string           `json:"last_correspondence"          yaml:"last_correspondence"`
	Owner              *int64            `json:"owner"                        yaml:"owner"`
	UserCanChange      *bool             `json:"user_can_change,omitempty"    yaml:"user_can_change,omitempty"`
	Permissions        *Permissions      `json:"permissions,omitempty"        yaml:"permissions,omitempty"`
}

// CorrespondentCreateRequest creates a correspondent.
type CorrespondentCreateRequest struct {
	Name              *string            `json:"name"`
	Match             *string            `json:"match,omitempty"`
	MatchingAlgorithm *MatchingAlgorithm `json:"matching_algorithm,omitempty"`
	IsInsensitive     *bool              `json:"is_insensitive,omitempty"`
	Owner             *int64             `json:"owner,omitempty"`
}

// Validate checks the required fields before any request is sent.
func (r *CorrespondentCreateRequest) Validate() error {
	if r.Name == nil {
		return &DraftFieldRequiredError{Fields: []string{"name"}}
	}

	return nil
}

// CorrespondentsClient accesses the correspondents resource.
type CorrespondentsClient interface {
	Getter[Correspondent]
	Lister[Correspondent]
	Creator[Correspondent, CorrespondentCreateRequest]
	Updater[Correspondent]
	Deleter
	Securable
}
