package paperless

// SavedViewFilterRule is one filter condition of a saved view.
type SavedViewFilterRule struct {
	RuleType int64   `json:"rule_type" yaml:"rule_type"`
	Value    *string `json:"value"     yaml:"value"`
}

// SavedView is a stored document filter with display settings.
type SavedView struct {
	ID              int64                 `json:"id"                        yaml:"id"`
	Name            string                `json:"name"                      yaml:"name"`
	ShowOnDashboard bool                  `json:"show_on_dashboard"         yaml:"show_on_dashboard"`
	ShowInSidebar   bool                  `json:"show_in_sidebar"           yaml:"show_in_sidebar"`
	SortField       *string               `json:"sort_field"                yaml:"sort_field"`
	SortReverse     bool                  `json:"sort_reverse"              yaml:"sort_reverse"`
	FilterRules     []SavedViewFilterRule `json:"filter_rules"              yaml:"filter_rules"`
	PageSize        *int64                `json:"page_size"                 yaml:"page_size"`
	DisplayMode     *string               `json:"display_mode"              yaml:"display_mode"`
	Owner           *int64                `json:"owner"                     yaml:"owner"`
	UserCanChange   *bool                 `json:"user_can_change,omitempty" yaml:"user_can_change,omitempty"`
}

// SavedViewsClient accesses saved views. Views are created in the web UI;
// the client can read and delete them.
type SavedViewsClient interface {
	Getter[SavedView]
	Lister[SavedView]
	Deleter
}
