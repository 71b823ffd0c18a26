package client

import (
	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// WorkflowsClient implements paperless.WorkflowsClient. Triggers and actions
// are served by their own standalone resources.
type WorkflowsClient struct {
	*resourceClient[paperless.Workflow]

	triggers *resourceClient[paperless.WorkflowTrigger]
	actions  *resourceClient[paperless.WorkflowAction]
}

func newWorkflowsClient(c *Client) *WorkflowsClient {
	return &WorkflowsClient{
		resourceClient: newResourceClient(c, paperless.ResourceWorkflows,
			func(w *paperless.Workflow) int64 { return w.ID }),
		triggers: newResourceClient(c, paperless.ResourceWorkflowTriggers,
			func(t *paperless.WorkflowTrigger) int64 { return t.ID }),
		actions: newResourceClient(c, paperless.ResourceWorkflowActions,
			func(a *paperless.WorkflowAction) int64 { return a.ID }),
	}
}

// Triggers accesses the standalone workflow triggers resource.
func (wc *WorkflowsClient) Triggers() paperless.WorkflowTriggersClient {
	return wc.triggers
}

// Actions accesses the standalone workflow actions resource.
func (wc *WorkflowsClient) Actions() paperless.WorkflowActionsClient {
	return wc.actions
}
