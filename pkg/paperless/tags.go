package paperless

// Tag is a document tag.
type Tag struct {
	ID                int64             `json:"id"                        yaml:"id"`
	Slug              string            `json:"slug"                      yaml:"slug"`
	Name              string            `json:"name"                      yaml:"name"`
	Color             string            `json:"color"                     yaml:"color"`
	TextColor         string            `json:"text_color,omitempty"      yaml:"text_color,omitempty"`
	IsInboxTag        bool              `json:"is_inbox_tag"              yaml:"is_inbox_tag"`
	Match             string            `json:"match"                     yaml:"match"`
	MatchingAlgorithm MatchingAlgorithm `json:"matching_algorithm"        yaml:"matching_algorithm"`
	IsInsensitive     bool              `json:"is_insensitive"            yaml:"is_insensitive"`
	DocumentCount     int64             `json:"document_count"            yaml:"document_count"`
	Owner             *int64            `json:"owner"                     yaml:"owner"`
	UserCanChange     *bool             `json:"user_can_change,omitempty" yaml:"user_can_change,omitempty"`
	Permissions       *Permissions      `json:"permissions,omitempty"     yaml:"permissions,omitempty"`
}

// TagCreateRequest creates a tag. Optional fields stay unsent when nil.
type TagCreateRequest struct {
	Name              *string            `json:"name"`
	Color             *string            `json:"color,omitempty"`
	IsInboxTag        *bool              `json:"is_inbox_tag,omitempty"`
	Match             *string            `json:"match,omitempty"`
	MatchingAlgorithm *MatchingAlgorithm `json:"matching_algorithm,omitempty"`
	IsInsensitive     *bool              `json:"is_insensitive,omitempty"`
	Owner             *int64             `json:"owner,omitempty"`
}

// Validate checks the required fields before any request is sent.
func (r *TagCreateRequest) Validate() error {
	if r.Name == nil {
		return &DraftFieldRequiredError{Fields: []string{"name"}}
	}

	return nil
}

// TagsClient accesses the tags resource.
type TagsClient interface {
	Getter[Tag]
	Lister[Tag]
	Creator[Tag, TagCreateRequest]
	Updater[Tag]
	Deleter
	Securable
}
