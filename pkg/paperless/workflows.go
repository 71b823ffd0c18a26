package paperless

import "encoding/json"

// WorkflowTriggerType selects the event that fires a workflow.
type WorkflowTriggerType int

const (
	TriggerConsumptionStarted WorkflowTriggerType = 1
	TriggerDocumentAdded      WorkflowTriggerType = 2
	TriggerDocumentUpdated    WorkflowTriggerType = 3

	// TriggerUnknown absorbs trigger types this client does not know about.
	TriggerUnknown WorkflowTriggerType = -1
)

func (t *WorkflowTriggerType) UnmarshalJSON(data []byte) error {
	var value int

	if err := json.Unmarshal(data, &value); err != nil {
		*t = TriggerUnknown

		return nil
	}

	switch WorkflowTriggerType(value) {
	case TriggerConsumptionStarted, TriggerDocumentAdded, TriggerDocumentUpdated:
		*t = WorkflowTriggerType(value)
	default:
		*t = TriggerUnknown
	}

	return nil
}

// WorkflowActionType selects what a workflow action does.
type WorkflowActionType int

const (
	ActionAssignment WorkflowActionType = 1
	ActionRemoval    WorkflowActionType = 2

	// ActionUnknown absorbs action types this client does not know about.
	ActionUnknown WorkflowActionType = -1
)

func (t *WorkflowActionType) UnmarshalJSON(data []byte) error {
	var value int

	if err := json.Unmarshal(data, &value); err != nil {
		*t = ActionUnknown

		return nil
	}

	switch WorkflowActionType(value) {
	case ActionAssignment, ActionRemoval:
		*t = WorkflowActionType(value)
	default:
		*t = ActionUnknown
	}

	return nil
}

// WorkflowTrigger describes when a workflow fires.
type WorkflowTrigger struct {
	ID                   int64               `json:"id"                         yaml:"id"`
	Type                 WorkflowTriggerType `json:"type"                       yaml:"type"`
	Sources              []int64             `json:"sources"                    yaml:"sources"`
	FilterPath           *string             `json:"filter_path"                yaml:"filter_path"`
	FilterFilename       *string             `json:"filter_filename"            yaml:"filter_filename"`
	FilterMailRule       *int64              `json:"filter_mailrule"            yaml:"filter_mailrule"`
	FilterHasTags        []int64             `json:"filter_has_tags"            yaml:"filter_has_tags"`
	FilterHasCorrespondent *int64            `json:"filter_has_correspondent"   yaml:"filter_has_correspondent"`
	FilterHasDocumentType  *int64            `json:"filter_has_document_type"   yaml:"filter_has_document_type"`
	MatchingAlgorithm    *MatchingAlgorithm  `json:"matching_algorithm"         yaml:"matching_algorithm"`
	Match                *string             `json:"match"                      yaml:"match"`
	IsInsensitive        *bool               `json:"is_insensitive"             yaml:"is_insensitive"`
}

// WorkflowAction describes what a workflow does when it fires.
type WorkflowAction struct {
	ID                  int64              `json:"id"                    yaml:"id"`
	Type                WorkflowActionType `json:"type"                  yaml:"type"`
	AssignTitle         *string            `json:"assign_title"          yaml:"assign_title"`
	AssignTags          []int64            `json:"assign_tags"           yaml:"assign_tags"`
	AssignCorrespondent *int64             `json:"assign_correspondent"  yaml:"assign_correspondent"`
	AssignDocumentType  *int64             `json:"assign_document_type"  yaml:"assign_document_type"`
	AssignStoragePath   *int64             `json:"assign_storage_path"   yaml:"assign_storage_path"`
	AssignOwner         *int64             `json:"assign_owner"          yaml:"assign_owner"`
	AssignViewUsers     []int64            `json:"assign_view_users"     yaml:"assign_view_users"`
	AssignViewGroups    []int64            `json:"assign_view_groups"    yaml:"assign_view_groups"`
	AssignChangeUsers   []int64            `json:"assign_change_users"   yaml:"assign_change_users"`
	AssignChangeGroups  []int64            `json:"assign_change_groups"  yaml:"assign_change_groups"`
}

// Workflow binds triggers to actions.
type Workflow struct {
	ID       int64             `json:"id"       yaml:"id"`
	Name     string            `json:"name"     yaml:"name"`
	Order    int64             `json:"order"    yaml:"order"`
	Enabled  bool              `json:"enabled"  yaml:"enabled"`
	Triggers []WorkflowTrigger `json:"triggers" yaml:"triggers"`
	Actions  []WorkflowAction  `json:"actions"  yaml:"actions"`
}

// WorkflowsClient accesses workflows and their trigger and action
// collections, which the server also exposes as standalone resources.
type WorkflowsClient interface {
	Getter[Workflow]
	Lister[Workflow]

	Triggers() WorkflowTriggersClient
	Actions() WorkflowActionsClient
}

// WorkflowTriggersClient accesses the standalone workflow triggers resource.
type WorkflowTriggersClient interface {
	Getter[WorkflowTrigger]
	Lister[WorkflowTrigger]
}

// WorkflowActionsClient accesses the standalone workflow actions resource.
type WorkflowActionsClient interface {
	Getter[WorkflowAction]
	Lister[WorkflowAction]
}
