package paperless

import (
	"context"
	"time"
)

// Task is one background task, most prominently document consumption.
type Task struct {
	ID              int64      `json:"id"               yaml:"id"`
	TaskID          string     `json:"task_id"          yaml:"task_id"`
	TaskFileName    *string    `json:"task_file_name"   yaml:"task_file_name"`
	DateCreated     *time.Time `json:"date_created"     yaml:"date_created"`
	DateDone        *time.Time `json:"date_done"        yaml:"date_done"`
	Type            *string    `json:"type"             yaml:"type"`
	Status          TaskStatus `json:"status"           yaml:"status"`
	Result          *string    `json:"result"           yaml:"result"`
	Acknowledged    bool       `json:"acknowledged"     yaml:"acknowledged"`
	RelatedDocument *string    `json:"related_document" yaml:"related_document"`
}

// TasksClient accesses background tasks.
type TasksClient interface {
	Getter[Task]
	Lister[Task]

	// GetByUUID looks a task up by its queue UUID, the handle returned from a
	// document upload. A TaskNotFoundError means the server does not list it.
	GetByUUID(ctx context.Context, taskID string) (*Task, error)

	// Acknowledge dismisses finished tasks from the task list.
	Acknowledge(ctx context.Context, taskIDs ...int64) error
}
