package paperless

// Group is a permission group.
type Group struct {
	ID          int64    `json:"id"          yaml:"id"`
	Name        string   `json:"name"        yaml:"name"`
	Permissions []string `json:"permissions" yaml:"permissions"`
}

// GroupsClient accesses the groups resource. The API exposes it read-only.
type GroupsClient interface {
	Getter[Group]
	Lister[Group]
}
