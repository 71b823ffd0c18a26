package paperless

import "fmt"

// ResourceType tags every server resource this client knows about.
type ResourceType string

const (
	ResourceCorrespondents   ResourceType = "correspondents"
	ResourceCustomFields     ResourceType = "custom_fields"
	ResourceDocuments        ResourceType = "documents"
	ResourceDocumentTypes    ResourceType = "document_types"
	ResourceGroups           ResourceType = "groups"
	ResourceMailAccounts     ResourceType = "mail_accounts"
	ResourceMailRules        ResourceType = "mail_rules"
	ResourceSavedViews       ResourceType = "saved_views"
	ResourceShareLinks       ResourceType = "share_links"
	ResourceStoragePaths     ResourceType = "storage_paths"
	ResourceTags             ResourceType = "tags"
	ResourceTasks            ResourceType = "tasks"
	ResourceUsers            ResourceType = "users"
	ResourceWorkflows        ResourceType = "workflows"
	ResourceWorkflowActions  ResourceType = "workflow_actions"
	ResourceWorkflowTriggers ResourceType = "workflow_triggers"
	ResourceConfig           ResourceType = "config"
	ResourceStatus           ResourceType = "status"
	ResourceStatistics       ResourceType = "statistics"
	ResourceRemoteVersion    ResourceType = "remote_version"
)

// Capability flags declare which operations a resource supports.
type Capability uint32

const (
	CapList Capability = 1 << iota
	CapGet
	CapCreate
	CapUpdate
	CapDelete
	CapSecurable
	CapSearch
	CapNotes
	CapMetadata
	CapFiles
	CapSuggestions
)

// Has reports whether every flag in want is present.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

const crud = CapList | CapGet | CapCreate | CapUpdate | CapDelete

// ResourceDescriptor binds a resource tag to its endpoints and capabilities.
type ResourceDescriptor struct {
	Type           ResourceType
	CollectionPath string
	// ItemPath is a format string with one %d verb for the primary key.
	ItemPath     string
	Capabilities Capability
}

// ItemURL renders the item endpoint for the given primary key.
func (d ResourceDescriptor) ItemURL(id int64) string {
	return fmt.Sprintf(d.ItemPath, id)
}

var registry = map[ResourceType]ResourceDescriptor{
	ResourceCorrespondents: {
		Type:           ResourceCorrespondents,
		CollectionPath: "/api/correspondents/",
		ItemPath:       "/api/correspondents/%d/",
		Capabilities:   crud | CapSecurable,
	},
	ResourceCustomFields: {
		Type:           ResourceCustomFields,
		CollectionPath: "/api/custom_fields/",
		ItemPath:       "/api/custom_fields/%d/",
		Capabilities:   crud,
	},
	ResourceDocuments: {
		Type:           ResourceDocuments,
		CollectionPath: "/api/documents/",
		ItemPath:       "/api/documents/%d/",
		Capabilities:   crud | CapSecurable | CapSearch | CapNotes | CapMetadata | CapFiles | CapSuggestions,
	},
	ResourceDocumentTypes: {
		Type:           ResourceDocumentTypes,
		CollectionPath: "/api/document_types/",
		ItemPath:       "/api/document_types/%d/",
		Capabilities:   crud | CapSecurable,
	},
	ResourceGroups: {
		Type:           ResourceGroups,
		CollectionPath: "/api/groups/",
		ItemPath:       "/api/groups/%d/",
		Capabilities:   CapList | CapGet,
	},
	ResourceMailAccounts: {
		Type:           ResourceMailAccounts,
		CollectionPath: "/api/mail_accounts/",
		ItemPath:       "/api/mail_accounts/%d/",
		Capabilities:   CapList | CapGet,
	},
	ResourceMailRules: {
		Type:           ResourceMailRules,
		CollectionPath: "/api/mail_rules/",
		ItemPath:       "/api/mail_rules/%d/",
		Capabilities:   CapList | CapGet,
	},
	ResourceSavedViews: {
		Type:           ResourceSavedViews,
		CollectionPath: "/api/saved_views/",
		ItemPath:       "/api/saved_views/%d/",
		Capabilities:   CapList | CapGet | CapDelete,
	},
	ResourceShareLinks: {
		Type:           ResourceShareLinks,
		CollectionPath: "/api/share_links/",
		ItemPath:       "/api/share_links/%d/",
		Capabilities:   crud,
	},
	ResourceStoragePaths: {
		Type:           ResourceStoragePaths,
		CollectionPath: "/api/storage_paths/",
		ItemPath:       "/api/storage_paths/%d/",
		Capabilities:   crud | CapSecurable,
	},
	ResourceTags: {
		Type:           ResourceTags,
		CollectionPath: "/api/tags/",
		ItemPath:       "/api/tags/%d/",
		Capabilities:   crud | CapSecurable,
	},
	ResourceTasks: {
		Type:           ResourceTasks,
		CollectionPath: "/api/tasks/",
		ItemPath:       "/api/tasks/%d/",
		Capabilities:   CapList | CapGet,
	},
	ResourceUsers: {
		Type:           ResourceUsers,
		CollectionPath: "/api/users/",
		ItemPath:       "/api/users/%d/",
		Capabilities:   CapList | CapGet,
	},
	ResourceWorkflows: {
		Type:           ResourceWorkflows,
		CollectionPath: "/api/workflows/",
		ItemPath:       "/api/workflows/%d/",
		Capabilities:   CapList | CapGet,
	},
	ResourceWorkflowActions: {
		Type:           ResourceWorkflowActions,
		CollectionPath: "/api/workflow_actions/",
		ItemPath:       "/api/workflow_actions/%d/",
		Capabilities:   CapList | CapGet,
	},
	ResourceWorkflowTriggers: {
		Type:           ResourceWorkflowTriggers,
		CollectionPath: "/api/workflow_triggers/",
		ItemPath:       "/api/workflow_triggers/%d/",
		Capabilities:   CapList | CapGet,
	},
	ResourceConfig: {
		Type:           ResourceConfig,
		CollectionPath: "/api/config/",
		ItemPath:       "/api/config/%d/",
		Capabilities:   CapGet,
	},
	ResourceStatus: {
		Type:           ResourceStatus,
		CollectionPath: "/api/status/",
		ItemPath:       "/api/status/%d/",
		Capabilities:   CapGet,
	},
	ResourceStatistics: {
		Type:           ResourceStatistics,
		CollectionPath: "/api/statistics/",
		ItemPath:       "/api/statistics/%d/",
		Capabilities:   CapGet,
	},
	ResourceRemoteVersion: {
		Type:           ResourceRemoteVersion,
		CollectionPath: "/api/remote_version/",
		ItemPath:       "/api/remote_version/%d/",
		Capabilities:   CapGet,
	},
}

// Descriptor looks up the descriptor for a resource tag.
func Descriptor(resource ResourceType) (ResourceDescriptor, bool) {
	descriptor, ok := registry[resource]

	return descriptor, ok
}

// KnownResources returns every resource tag this client ships descriptors
// for, in unspecified order.
func KnownResources() []ResourceType {
	resources := make([]ResourceType, 0, len(registry))
	for resource := range registry {
		resources = append(resources, resource)
	}

	return resources
}

// DiffResources splits local knowledge against the server-advertised set:
// missing holds locally known tags the server did not advertise (outdated
// server), unused holds advertised tags this client has no descriptor for.
func DiffResources(advertised map[ResourceType]struct{}) (missing, unused []ResourceType) {
	for resource := range registry {
		if _, ok := advertised[resource]; !ok {
			missing = append(missing, resource)
		}
	}

	for resource := range advertised {
		if _, ok := registry[resource]; !ok {
			unused = append(unused, resource)
		}
	}

	return missing, unused
}
