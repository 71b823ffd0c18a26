package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/paperless-community/paperless-go/internal/http"
	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// TasksClient implements paperless.TasksClient.
type TasksClient struct {
	*resourceClient[paperless.Task]
}

func newTasksClient(c *Client) *TasksClient {
	return &TasksClient{
		resourceClient: newResourceClient(c, paperless.ResourceTasks,
			func(t *paperless.Task) int64 { return t.ID }),
	}
}

// GetByUUID looks a task up by its queue UUID, the handle a document upload
// returns. A TaskNotFoundError means the server does not list the task.
func (tc *TasksClient) GetByUUID(ctx context.Context, taskID string) (*paperless.Task, error) {
	query := url.Values{}
	query.Set("task_id", taskID)

	response, err := tc.client.http.Get(ctx, tc.descriptor.CollectionPath, query)
	if err != nil {
		return nil, fmt.Errorf("getting task %q: %w", taskID, err)
	}

	tasks, err := decodeTaskList(response)
	if err != nil {
		return nil, fmt.Errorf("parsing task %q: %w", taskID, err)
	}

	for i := range tasks {
		if tasks[i].TaskID == taskID {
			return &tasks[i], nil
		}
	}

	return nil, &paperless.TaskNotFoundError{TaskID: taskID}
}

// decodeTaskList accepts both renderings of a filtered task query: older
// servers send a bare array, newer ones the paginated envelope.
func decodeTaskList(response *internalhttp.Response) ([]paperless.Task, error) {
	var tasks []paperless.Task
	if err := json.Unmarshal(response.Body, &tasks); err == nil {
		return tasks, nil
	}

	var page paperless.ListResponse[paperless.Task]

	err := response.JSON(&page)
	if err != nil {
		return nil, err
	}

	return page.Results, nil
}

// Acknowledge dismisses finished tasks from the task list.
func (tc *TasksClient) Acknowledge(ctx context.Context, taskIDs ...int64) error {
	if len(taskIDs) == 0 {
		return nil
	}

	body := map[string]any{"tasks": taskIDs}

	_, err := tc.client.http.Post(ctx, "/api/acknowledge_tasks/", body)
	if err != nil {
		return fmt.Errorf("acknowledging tasks %v: %w", taskIDs, err)
	}

	return nil
}
