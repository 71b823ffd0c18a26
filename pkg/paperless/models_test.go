package paperless_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

func TestCreateRequestValidation(t *testing.T) {
	t.Parallel()

	name := "taxes"
	path := "{created_year}/{title}"
	document := int64(7)

	tests := []struct {
		name        string
		request     interface{ Validate() error }
		wantMissing []string
	}{
		{
			name:        "tag without name",
			request:     &paperless.TagCreateRequest{},
			wantMissing: []string{"name"},
		},
		{
			name:    "tag with name",
			request: &paperless.TagCreateRequest{Name: &name},
		},
		{
			name:        "correspondent without name",
			request:     &paperless.CorrespondentCreateRequest{},
			wantMissing: []string{"name"},
		},
		{
			name:        "document type without name",
			request:     &paperless.DocumentTypeCreateRequest{},
			wantMissing: []string{"name"},
		},
		{
			name:        "storage path without name and path",
			request:     &paperless.StoragePathCreateRequest{},
			wantMissing: []string{"name", "path"},
		},
		{
			name:    "storage path complete",
			request: &paperless.StoragePathCreateRequest{Name: &name, Path: &path},
		},
		{
			name:        "share link without document",
			request:     &paperless.ShareLinkCreateRequest{},
			wantMissing: []string{"document"},
		},
		{
			name:    "share link complete",
			request: &paperless.ShareLinkCreateRequest{Document: &document},
		},
		{
			name:        "document upload without content",
			request:     &paperless.DocumentCreateRequest{},
			wantMissing: []string{"document"},
		},
		{
			name:    "document upload with content",
			request: &paperless.DocumentCreateRequest{Document: []byte("%PDF-1.4")},
		},
		{
			name:        "note without text",
			request:     &paperless.DocumentNoteCreateRequest{},
			wantMissing: []string{"note"},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.request.Validate()
			if len(testCase.wantMissing) == 0 {
				assert.NoError(t, err)

				return
			}

			var draftErr *paperless.DraftFieldRequiredError

			require.ErrorAs(t, err, &draftErr)
			assert.Equal(t, testCase.wantMissing, draftErr.Fields)
		})
	}
}

func TestDocumentUnmarshalSearchHit(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": 12,
		"title": "Electricity bill",
		"correspondent": null,
		"tags": [1, 3],
		"__search_hit__": {"score": 0.83, "highlights": "electricity", "rank": 0}
	}`

	var document paperless.Document

	require.NoError(t, json.Unmarshal([]byte(payload), &document))
	assert.Equal(t, int64(12), document.ID)
	assert.Nil(t, document.Correspondent)
	require.NotNil(t, document.SearchHit)
	assert.InDelta(t, 0.83, document.SearchHit.Score, 0.001)
}

func TestWorkflowEnumUnmarshal(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": 1,
		"name": "Inbox rules",
		"order": 0,
		"enabled": true,
		"triggers": [{"id": 1, "type": 2, "sources": [1]}, {"id": 2, "type": 77, "sources": []}],
		"actions": [{"id": 1, "type": 1}, {"id": 2, "type": 55}]
	}`

	var workflow paperless.Workflow

	require.NoError(t, json.Unmarshal([]byte(payload), &workflow))
	require.Len(t, workflow.Triggers, 2)
	assert.Equal(t, paperless.TriggerDocumentAdded, workflow.Triggers[0].Type)
	assert.Equal(t, paperless.TriggerUnknown, workflow.Triggers[1].Type)
	require.Len(t, workflow.Actions, 2)
	assert.Equal(t, paperless.ActionAssignment, workflow.Actions[0].Type)
	assert.Equal(t, paperless.ActionUnknown, workflow.Actions[1].Type)
}

func TestListResponseUnmarshal(t *testing.T) {
	t.Parallel()

	payload := `{
		"count": 2,
		"next": null,
		"previous": null,
		"all": [4, 9],
		"results": [
			{"id": 4, "name": "inbox", "matching_algorithm": 6},
			{"id": 9, "name": "archive", "matching_algorithm": 0}
		]
	}`

	var page paperless.ListResponse[paperless.Tag]

	require.NoError(t, json.Unmarshal([]byte(payload), &page))
	assert.Equal(t, int64(2), page.Count)
	assert.Equal(t, []int64{4, 9}, page.All)
	require.Len(t, page.Results, 2)
	assert.Equal(t, paperless.MatchAuto, page.Results[0].MatchingAlgorithm)
}
