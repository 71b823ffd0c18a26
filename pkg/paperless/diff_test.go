package paperless_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

func TestChangesNoDifference(t *testing.T) {
	t.Parallel()

	tag := &paperless.Tag{ID: 5, Name: "inbox", Color: "#ff0000"}
	same := *tag

	patch, err := paperless.Changes(tag, &same)
	require.NoError(t, err)
	assert.Empty(t, patch)
}

func TestChangesSingleField(t *testing.T) {
	t.Parallel()

	original := &paperless.Tag{ID: 5, Name: "inbox", Color: "#ff0000"}
	modified := *original
	modified.Name = "archive"

	patch, err := paperless.Changes(original, &modified)
	require.NoError(t, err)
	require.Len(t, patch, 1)
	assert.Equal(t, json.RawMessage(`"archive"`), patch["name"])
}

func TestChangesSkipsReadOnlyKeys(t *testing.T) {
	t.Parallel()

	original := &paperless.Tag{ID: 5, Name: "inbox", DocumentCount: 3}
	modified := *original
	modified.DocumentCount = 99

	patch, err := paperless.Changes(original, &modified)
	require.NoError(t, err)
	assert.Empty(t, patch)
}

func TestChangesRenamesPermissions(t *testing.T) {
	t.Parallel()

	original := &paperless.Tag{ID: 5, Name: "inbox"}
	modified := *original
	modified.Permissions = &paperless.Permissions{
		View: paperless.PermissionSet{Users: []int64{1, 2}},
	}

	patch, err := paperless.Changes(original, &modified)
	require.NoError(t, err)
	require.Contains(t, patch, "set_permissions")
	assert.NotContains(t, patch, "permissions")

	var permissions paperless.Permissions

	require.NoError(t, json.Unmarshal(patch["set_permissions"], &permissions))
	assert.Equal(t, []int64{1, 2}, permissions.View.Users)
}

func TestChangesClearedFieldBecomesNull(t *testing.T) {
	t.Parallel()

	owner := int64(4)
	original := &paperless.Document{ID: 1, Title: "a", Owner: &owner, Tags: []int64{}, Created: nil}
	modified := *original
	modified.Owner = nil

	patch, err := paperless.Changes(original, &modified)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("null"), patch["owner"])
}

func TestWritePayload(t *testing.T) {
	t.Parallel()

	tag := &paperless.Tag{
		ID:            5,
		Name:          "inbox",
		DocumentCount: 12,
		Permissions: &paperless.Permissions{
			Change: paperless.PermissionSet{Groups: []int64{3}},
		},
	}

	payload, err := paperless.WritePayload(tag)
	require.NoError(t, err)

	assert.NotContains(t, payload, "id")
	assert.NotContains(t, payload, "document_count")
	assert.NotContains(t, payload, "permissions")
	assert.Contains(t, payload, "set_permissions")
	assert.Equal(t, json.RawMessage(`"inbox"`), payload["name"])
}
