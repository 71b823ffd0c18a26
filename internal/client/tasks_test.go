package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

func TestTasksGetByUUID(t *testing.T) {
	t.Parallel()

	t.Run("found in a bare array rendering", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/tasks/", request.URL.Path)
			assert.Equal(t, "abc-123", request.URL.Query().Get("task_id"))

			writeJSON(t, writer, http.StatusOK,
				`[{"id": 9, "task_id": "abc-123", "status": "SUCCESS", "acknowledged": false}]`)
		}))
		defer server.Close()

		c := newTestClient(t, server)

		task, err := c.Tasks().GetByUUID(context.Background(), "abc-123")
		require.NoError(t, err)
		assert.Equal(t, int64(9), task.ID)
		assert.Equal(t, paperless.TaskStatusSuccess, task.Status)
	})

	t.Run("found in a paginated rendering", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(t, writer, http.StatusOK,
				listBody(`[{"id": 9, "task_id": "abc-123", "status": "PENDING", "acknowledged": false}]`, 1))
		}))
		defer server.Close()

		c := newTestClient(t, server)

		task, err := c.Tasks().GetByUUID(context.Background(), "abc-123")
		require.NoError(t, err)
		assert.Equal(t, paperless.TaskStatusPending, task.Status)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(t, writer, http.StatusOK, `[]`)
		}))
		defer server.Close()

		c := newTestClient(t, server)

		_, err := c.Tasks().GetByUUID(context.Background(), "missing-uuid")

		var notFound *paperless.TaskNotFoundError

		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing-uuid", notFound.TaskID)
	})
}

func TestTasksAcknowledge(t *testing.T) {
	t.Parallel()

	t.Run("posts the task ids", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/acknowledge_tasks/", request.URL.Path)

			var body map[string][]int64

			data, _ := io.ReadAll(request.Body)
			require.NoError(t, json.Unmarshal(data, &body))
			assert.Equal(t, []int64{9, 10}, body["tasks"])

			writeJSON(t, writer, http.StatusOK, `{"result": 2}`)
		}))
		defer server.Close()

		c := newTestClient(t, server)

		require.NoError(t, c.Tasks().Acknowledge(context.Background(), 9, 10))
	})

	t.Run("no ids means no request", func(t *testing.T) {
		t.Parallel()

		counter := &requestCounter{}
		server := httptest.NewServer(counter.wrap(http.NotFoundHandler()))
		defer server.Close()

		c := newTestClient(t, server)

		require.NoError(t, c.Tasks().Acknowledge(context.Background()))
		assert.Zero(t, counter.total())
	})
}
