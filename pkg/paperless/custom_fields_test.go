package paperless_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

func field(id int64, dataType paperless.CustomFieldDataType) *paperless.CustomField {
	return &paperless.CustomField{ID: id, Name: "field", DataType: dataType}
}

func rawValue(t *testing.T, fieldID int64, payload string) paperless.CustomFieldValue {
	t.Helper()

	var value any
	require.NoError(t, json.Unmarshal([]byte(payload), &value))

	return paperless.CustomFieldValue{Field: fieldID, Value: value}
}

func TestResolveCustomFieldValue(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(1, paperless.CustomFieldString), rawValue(t, 1, `"hello"`))

		value, ok := typed.(paperless.StringValue)
		require.True(t, ok)
		assert.Equal(t, "hello", value.Value)
		assert.Equal(t, int64(1), value.FieldID())
		assert.Equal(t, paperless.CustomFieldString, value.DataType())
	})

	t.Run("boolean", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(2, paperless.CustomFieldBoolean), rawValue(t, 2, `true`))

		value, ok := typed.(paperless.BooleanValue)
		require.True(t, ok)
		assert.True(t, value.Value)
	})

	t.Run("integer", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(3, paperless.CustomFieldInteger), rawValue(t, 3, `42`))

		value, ok := typed.(paperless.IntegerValue)
		require.True(t, ok)
		assert.Equal(t, int64(42), value.Value)
	})

	t.Run("monetary with currency prefix", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(4, paperless.CustomFieldMonetary), rawValue(t, 4, `"EUR123.40"`))

		value, ok := typed.(paperless.MonetaryValue)
		require.True(t, ok)
		assert.Equal(t, "EUR", value.Currency)
		assert.InDelta(t, 123.40, value.Amount, 0.001)
		assert.Equal(t, "EUR123.40", value.Raw)
	})

	t.Run("monetary bare number", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(4, paperless.CustomFieldMonetary), rawValue(t, 4, `19.99`))

		value, ok := typed.(paperless.MonetaryValue)
		require.True(t, ok)
		assert.Empty(t, value.Currency)
		assert.InDelta(t, 19.99, value.Amount, 0.001)
	})

	t.Run("date", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(5, paperless.CustomFieldDate), rawValue(t, 5, `"2024-06-01"`))

		value, ok := typed.(paperless.DateValue)
		require.True(t, ok)
		assert.True(t, paperless.NewDate(2024, time.June, 1).Equal(value.Value.Time))
	})

	t.Run("document link", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(6, paperless.CustomFieldDocumentLink), rawValue(t, 6, `[10, 11, 12]`))

		value, ok := typed.(paperless.DocumentLinkValue)
		require.True(t, ok)
		assert.Equal(t, []int64{10, 11, 12}, value.Documents)
	})

	t.Run("select resolves label from options", func(t *testing.T) {
		t.Parallel()

		definition := field(7, paperless.CustomFieldSelect)
		definition.ExtraData = &paperless.CustomFieldExtraData{
			SelectOptions: []paperless.SelectOption{
				{ID: "opt-a", Label: "Alpha"},
				{ID: "opt-b", Label: "Beta"},
			},
		}

		typed := paperless.ResolveCustomFieldValue(definition, rawValue(t, 7, `"opt-b"`))

		value, ok := typed.(paperless.SelectValue)
		require.True(t, ok)
		assert.Equal(t, "opt-b", value.OptionID)
		assert.Equal(t, "Beta", value.Label)
	})

	t.Run("select with unlisted option keeps empty label", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(7, paperless.CustomFieldSelect), rawValue(t, 7, `"opt-z"`))

		value, ok := typed.(paperless.SelectValue)
		require.True(t, ok)
		assert.Equal(t, "opt-z", value.OptionID)
		assert.Empty(t, value.Label)
	})

	t.Run("missing definition preserves raw value", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(nil, rawValue(t, 8, `"whatever"`))

		value, ok := typed.(paperless.UnknownValue)
		require.True(t, ok)
		assert.Equal(t, "whatever", value.Raw)
		assert.Equal(t, paperless.CustomFieldUnknown, value.DataType())
	})

	t.Run("shape mismatch preserves raw value", func(t *testing.T) {
		t.Parallel()

		typed := paperless.ResolveCustomFieldValue(field(9, paperless.CustomFieldInteger), rawValue(t, 9, `"not a number"`))

		_, ok := typed.(paperless.UnknownValue)
		assert.True(t, ok)
	})
}

func TestCustomFieldDataTypeUnmarshal(t *testing.T) {
	t.Parallel()

	var dataType paperless.CustomFieldDataType

	require.NoError(t, json.Unmarshal([]byte(`"monetary"`), &dataType))
	assert.Equal(t, paperless.CustomFieldMonetary, dataType)

	require.NoError(t, json.Unmarshal([]byte(`"hologram"`), &dataType))
	assert.Equal(t, paperless.CustomFieldUnknown, dataType)
}

func TestCustomFieldCreateRequestValidate(t *testing.T) {
	t.Parallel()

	request := &paperless.CustomFieldCreateRequest{}

	var draftErr *paperless.DraftFieldRequiredError

	err := request.Validate()
	require.ErrorAs(t, err, &draftErr)
	assert.ElementsMatch(t, []string{"name", "data_type"}, draftErr.Fields)

	request.Name = "invoice number"
	request.DataType = paperless.CustomFieldString
	assert.NoError(t, request.Validate())
}

func TestDocumentTypedCustomFields(t *testing.T) {
	t.Parallel()

	document := &paperless.Document{
		ID: 1,
		CustomFields: []paperless.CustomFieldValue{
			{Field: 1, Value: "hello"},
			{Field: 99, Value: "mystery"},
		},
	}

	definitions := map[int64]paperless.CustomField{
		1: {ID: 1, DataType: paperless.CustomFieldString},
	}

	typed := document.TypedCustomFields(definitions)
	require.Len(t, typed, 2)

	_, ok := typed[0].(paperless.StringValue)
	assert.True(t, ok)

	_, ok = typed[1].(paperless.UnknownValue)
	assert.True(t, ok)
}
