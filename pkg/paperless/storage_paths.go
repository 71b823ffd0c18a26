package paperless

// StoragePath controls where consumed documents are filed on disk.
type StoragePath struct {
	ID                int64             `json:"id"                        yaml:"id"`
	Slug              string            `json:"slug"                      yaml:"slug"`
	Name              string            `json:"name"                      yaml:"name"`
	Path              string            `json:"path"                      yaml:"path"`
	Match             string            `json:"match"                     yaml:"match"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm"        yaml:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"            yaml:"is_insensitive"`
	DocumentCount     int64             `json:"document_count"            yaml:"document_count"`
	Owner             *int64            `json:"owner"                     yaml:"owner"`
	UserCanChange     *bool             `json:"user_can_change,omitempty" yaml:"user_can_change,omitempty"`
	Permissions       *Permissions      `json:"permissions,omitempty"     yaml:"permissions,omitempty"`
}

// StoragePathCreateRequest creates a storage path.
type StoragePathCreateRequest struct {
	Name              *string            `json:"name"`
	Path              *string            `json:"path"`
	Match             *string            `json:"match,omitempty"`
	MatchingAlgorithm *MatchingAlgorithm `json:"matching_algorithm,omitempty"`
	IsInsensitive     *bool              `json:"is_insensitive,omitempty"`
	Owner             *int64             `json:"owner,omitempty"`
}

// Validate checks the required fields before any request is sent.
func (r *StoragePathCreateRequest) Validate() error {
	var missing []string

	if r.Name == nil {
		missing = append(missing, "name")
	}

	if r.Path == nil {
		missing = append(missing, "path")
	}

	if len(missing) > 0 {
		return &DraftFieldRequiredError{Fields: missing}
	}

	return nil
}

// StoragePathsClient accesses the storage paths resource.
type StoragePathsClient interface {
	Getter[StoragePath]
	Lister[StoragePath]
	Creator[StoragePath, StoragePathCreateRequest]
	Updater[StoragePath]
	Deleter
	Securable
}
